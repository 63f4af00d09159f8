package global

import "testing"

func TestGetNetwork(t *testing.T) {
	n, ok := GetNetwork("BASE")
	if !ok || n.ChainID != 8453 {
		t.Errorf("GetNetwork(BASE) = %+v, %v", n, ok)
	}
	if _, ok := GetNetwork("optimism"); ok {
		t.Error("unexpected preset")
	}
}
