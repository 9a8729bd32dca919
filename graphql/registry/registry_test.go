package registry

import (
	"context"
	"testing"
)

func TestRegistry_ResolvePassesArgs(t *testing.T) {
	defer Unregister("receiptFooter")

	Register("receiptFooter", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		store, _ := args["store"].(string)
		return "Thank you for visiting " + store, nil
	})

	got, err := Resolve(context.Background(), "receiptFooter", map[string]interface{}{"store": "Panda #42"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "Thank you for visiting Panda #42" {
		t.Errorf("got %v", got)
	}
}

func TestRegistry_UnknownExtension(t *testing.T) {
	if _, err := Resolve(context.Background(), "noSuchExtension", nil); err == nil {
		t.Fatal("want error for unknown extension")
	}
}

func TestRegistry_NamesListsRegistered(t *testing.T) {
	defer Unregister("loyaltyBalance")
	Register("loyaltyBalance", func(context.Context, map[string]interface{}) (interface{}, error) { return 0, nil })

	var found bool
	for _, n := range Names() {
		if n == "loyaltyBalance" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, want to include loyaltyBalance", Names())
	}
}
