package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndLoad(t *testing.T) {
	Register("test_meadow", "Meadow", func() ([]byte, error) { return []byte("id: test_meadow"), nil })

	if !Exists("test_meadow") {
		t.Fatal("registered scenario not found")
	}
	data, err := Load("test_meadow")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(data) != "id: test_meadow" {
		t.Errorf("Load() = %q", data)
	}
	if Title("test_meadow") != "Meadow" {
		t.Errorf("Title() = %q, expected Meadow", Title("test_meadow"))
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("does_not_exist"); !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("Load() error = %v, expected ErrUnknownScenario", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("test_zz", "", func() ([]byte, error) { return nil, nil })
	Register("test_aa", "", func() ([]byte, error) { return nil, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
	if Title("test_zz") != "test_zz" {
		t.Error("empty title should fall back to the id")
	}
}

func TestDuplicatePanics(t *testing.T) {
	Register("test_dup", "Dup", func() ([]byte, error) { return nil, nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "Dup", func() ([]byte, error) { return nil, nil })
}
