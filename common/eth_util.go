package common

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ZERO_ADDRESS string = "0x0000000000000000000000000000000000000000"

var addressPattern = regexp.MustCompile(`0x[0-9a-fA-F]{40}`)

func HexToAddress(hex string) common.Address {
	return common.HexToAddress(hex)
}

func IsAddress(str string) bool {
	return addressPattern.MatchString(strings.TrimSpace(str)) &&
		len(strings.TrimSpace(str)) == 42
}

func IsZeroAddress(addr common.Address) bool {
	return addr == common.Address{}
}

// ScanForAddresses returns all hex addresses appearing anywhere in para,
// in order of appearance.
func ScanForAddresses(para string) []string {
	return addressPattern.FindAllString(para, -1)
}
