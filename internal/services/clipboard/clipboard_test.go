package clipboard

import "testing"

func TestNewServiceImplementsCopier(t *testing.T) {
	var copier Copier = NewService()
	if copier == nil {
		t.Fatalf("expected service")
	}
}
