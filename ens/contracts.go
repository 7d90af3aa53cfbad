package ens

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// The registry and resolver interfaces are fixed by ENSIP-1/ENSIP-10, so
// the ABIs are carried here instead of being fetched from an explorer.

var registryABIJSON = `[
	{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}
]`

var resolverABIJSON = `[
	{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"name","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"name","type":"bytes"},{"name":"data","type":"bytes"}],"name":"resolve","outputs":[{"name":"","type":"bytes"}],"stateMutability":"view","type":"function"}
]`

func GetRegistryABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(registryABIJSON))
	return &result
}

func GetResolverABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(resolverABIJSON))
	return &result
}
