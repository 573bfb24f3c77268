package registry

import (
	"context"
	"errors"
	"testing"
)

type stubFrontend struct {
	name string
}

func (s stubFrontend) Name() string        { return s.name }
func (s stubFrontend) Description() string { return "stub " + s.name }
func (s stubFrontend) Run(context.Context, Options) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", func() Frontend { return stubFrontend{name: "test-alpha"} })

	if !Exists("test-alpha") {
		t.Fatal("registered frontend should exist")
	}

	fe, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fe.Name() != "test-alpha" {
		t.Errorf("Name = %q", fe.Name())
	}
	if err := fe.Run(context.Background(), Options{}); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("err = %v, want ErrUnknownFrontend", err)
	}
	if Exists("does-not-exist") {
		t.Error("unknown frontend reported as existing")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-zulu", func() Frontend { return stubFrontend{name: "test-zulu"} })
	Register("test-bravo", func() Frontend { return stubFrontend{name: "test-bravo"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	found := false
	for _, info := range list {
		if info.Name == "test-bravo" {
			found = true
			if info.Description != "stub test-bravo" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("test-bravo missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return stubFrontend{name: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Frontend { return stubFrontend{name: "test-dup"} })
}
