package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fero-tech/claimrunner/internal/chain/chaintest"
)

func TestInfo(t *testing.T) {
	backend := chaintest.NewBackend()
	addr := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	info, err := Info(context.Background(), backend, addr)
	if err != nil {
		t.Fatal(err)
	}
	if info.Address != addr || info.ChainId.Int64() != 8453 || info.CurrentBlock != 1000 {
		t.Errorf("unexpected info %+v", info)
	}
	if info.BalanceEther() != "1" {
		t.Errorf("balance = %s", info.BalanceEther())
	}
	if backend.Called("send") {
		t.Error("Info must not send transactions")
	}
}

func TestInfoWrapsErrors(t *testing.T) {
	backend := chaintest.NewBackend()
	backend.BalanceErr = errors.New("connection refused")
	_, err := Info(context.Background(), backend, common.Address{})
	if err == nil || !strings.HasPrefix(err.Error(), "balance") {
		t.Errorf("err = %v", err)
	}
}
