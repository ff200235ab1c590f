package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpg/internal/registry"
	"github.com/vovakirdan/tui-rpg/internal/save"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `List every save slot in the database.

Examples:
  rpg saves
  rpg saves show default
  rpg saves delete ssh:alice`,
	Run: runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Print the save document of a slot",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesShow,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSavesList(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	slots, err := store.ListSlots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		return
	}
	if len(slots) == 0 {
		fmt.Println("No saves yet.")
		return
	}

	fmt.Printf("  %-20s  %-16s  %-5s  %s\n", "Slot", "Scenario", "Level", "Saved")
	fmt.Printf("  %-20s  %-16s  %-5s  %s\n", "----", "--------", "-----", "-----")
	for _, s := range slots {
		fmt.Printf("  %-20s  %-16s  %-5d  %s\n",
			s.Slot, registry.Title(s.MapID), s.Level, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runSavesShow(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	sv, err := store.LoadSlot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	doc, err := save.Parse(sv.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Println(string(sv.Data))
		return
	}
	out, err := save.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func runSavesDelete(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeleteSlot(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted slot %q\n", args[0])
}
