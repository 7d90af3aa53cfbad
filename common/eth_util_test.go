package common_test

import (
	"testing"

	"github.com/ensolve/ensolve/common"
)

func TestIsAddress(t *testing.T) {
	if !common.IsAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045") {
		t.Errorf("valid address rejected")
	}
	if common.IsAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA9604") {
		t.Errorf("39-byte hex accepted")
	}
	if common.IsAddress("vitalik.eth") {
		t.Errorf("ens name accepted as address")
	}
}

func TestScanForAddresses(t *testing.T) {
	para := "send from 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 to 0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e please"
	got := common.ScanForAddresses(para)
	if len(got) != 2 {
		t.Fatalf("found %d addresses, want 2", len(got))
	}
	if got[0] != "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045" {
		t.Errorf("first address = %s", got[0])
	}
}
