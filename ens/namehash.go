package ens

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/net/idna"
)

// Each label must be a valid normalised label as described in UTS46 with
// the options transitional=false and useSTD3AsciiRules=true, per
// https://docs.ens.domains/ens-improvement-proposals/ensip-1-ens#name-syntax
var ensProfile = idna.New(
	idna.Transitional(false),
	idna.StrictDomainName(true),
	idna.MapForLookup(),
)

// NameHash implements the ENSIP-1 namehash algorithm.
func NameHash(name string) (common.Hash, error) {
	var node common.Hash

	// strings.Split("", ".") returns a slice of len 1, so the empty name
	// must return before any hashing occurs.
	if name == "" {
		return node, nil
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		lh, err := labelHash(labels[i])
		if err != nil {
			return common.Hash{}, err
		}
		node = crypto.Keccak256Hash(node[:], lh[:])
	}

	return node, nil
}

func labelHash(label string) (common.Hash, error) {
	// By definition, labelhash of "" is 0x0.
	if label == "" {
		return common.Hash{}, nil
	}

	if strings.Contains(label, ".") {
		return common.Hash{}, fmt.Errorf("%w: label %q contains a period", ErrInvalidInput, label)
	}

	normalized, err := ensProfile.ToUnicode(label)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return crypto.Keccak256Hash([]byte(normalized)), nil
}

// Normalize returns the UTS46-normalized form of name.
func Normalize(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	labels := strings.Split(name, ".")
	for i, label := range labels {
		if label == "" {
			return "", fmt.Errorf("%w: empty label in %q", ErrInvalidInput, name)
		}
		normalized, err := ensProfile.ToUnicode(label)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		labels[i] = normalized
	}
	return strings.Join(labels, "."), nil
}

// DNSEncode encodes name as a length-prefixed label sequence terminated
// by a zero byte, the format ENSIP-10 wildcard resolvers take names in.
func DNSEncode(name string) ([]byte, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	result := []byte{}
	for _, label := range strings.Split(normalized, ".") {
		if len(label) > 63 {
			return nil, fmt.Errorf("%w: label %q is longer than 63 bytes", ErrInvalidInput, label)
		}
		result = append(result, byte(len(label)))
		result = append(result, label...)
	}
	return append(result, 0), nil
}

// ReverseNode returns the namehash of the reverse registrar node for
// addr, i.e. "<hex-addr-without-0x>.addr.reverse".
func ReverseNode(addr common.Address) common.Hash {
	name := strings.ToLower(strings.TrimPrefix(addr.Hex(), "0x")) + ".addr.reverse"
	// the name is plain lowercase hex ASCII, hashing cannot fail
	node, _ := NameHash(name)
	return node
}
