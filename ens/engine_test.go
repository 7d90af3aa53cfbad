package ens

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/ensolve/ensolve/networks"
)

type engineSuite struct {
	suite.Suite

	fake   *fakeReader
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(engineSuite))
}

func (s *engineSuite) SetupTest() {
	s.fake = newFakeReader()
	s.engine = NewEngine(s.fake, networks.EthereumMainnet)
}

// serveAddr makes the fake resolver answer addr(bytes32) and
// resolve(bytes,bytes)-wrapped addr queries with the given address.
func (s *engineSuite) serveAddr(addr common.Address) {
	a := GetResolverABI()
	s.fake.ethCall = func(to string, data []byte) ([]byte, error) {
		method, err := a.MethodById(data[:4])
		if err != nil {
			return nil, err
		}
		switch method.Name {
		case "addr":
			return packAddr(addr), nil
		case "resolve":
			return a.Methods["resolve"].Outputs.Pack(packAddr(addr))
		}
		return nil, fmt.Errorf("unexpected resolver method %q", method.Name)
	}
}

func (s *engineSuite) TestNoNetwork() {
	engine := NewEngine(s.fake, nil)
	_, err := engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.ErrorIs(err, ErrNoNetwork)

	_, err = engine.ResolveNameSync(common.HexToAddress("0x01"), OnChainOnly)
	s.ErrorIs(err, ErrNoNetwork)

	// a network without an ENS deployment behaves the same
	engine = NewEngine(s.fake, networks.BSCMainnet)
	_, err = engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.ErrorIs(err, ErrNoNetwork)

	// and no network call may have been issued
	s.Equal(0, s.fake.totalCalls())
}

func (s *engineSuite) TestResolveAddress() {
	want := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.serveAddr(want)

	got, err := s.engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *engineSuite) TestResolveAddressWildcard() {
	want := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setResolver("domain.eth", testResolverAddr)

	a := GetResolverABI()
	s.fake.ethCall = func(to string, data []byte) ([]byte, error) {
		method, err := a.MethodById(data[:4])
		if err != nil {
			return nil, err
		}
		// a handle found via fallback must query through
		// resolve(bytes,bytes) addressed with the full name
		s.Equal("resolve", method.Name)
		in, err := method.Inputs.Unpack(data[4:])
		s.Require().NoError(err)
		wantDNS, _ := DNSEncode("sub.domain.eth")
		s.True(bytes.Equal(in[0].([]byte), wantDNS), "wildcard query is not addressed with the full name")
		return a.Methods["resolve"].Outputs.Pack(packAddr(want))
	}

	got, err := s.engine.ResolveAddressSync("sub.domain.eth", OnChainOnly)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *engineSuite) TestResolveName() {
	owner := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setReverseResolver(owner, testResolverAddr)
	s.fake.ethCall = func(to string, data []byte) ([]byte, error) {
		return packName("vitalik.eth"), nil
	}

	name, err := s.engine.ResolveNameSync(owner, OnChainOnly)
	s.Require().NoError(err)
	s.Equal("vitalik.eth", name)
}

func (s *engineSuite) TestErrorCoercion() {
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.fake.ethCall = func(to string, data []byte) ([]byte, error) {
		return nil, fmt.Errorf("some transport hiccup")
	}

	_, err := s.engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.ErrorIs(err, ErrUnknownName)
}

func (s *engineSuite) TestNoAddressRecord() {
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.serveAddr(common.Address{})

	_, err := s.engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.ErrorIs(err, ErrUnknownName)
}

func (s *engineSuite) TestEmptyNameInvalid() {
	_, err := s.engine.ResolveAddressSync("", OnChainOnly)
	s.ErrorIs(err, ErrInvalidInput)
	s.Equal(0, s.fake.totalCalls())
}

func (s *engineSuite) TestRegistryOverride() {
	want := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.serveAddr(want)

	// no network at all, only an explicit override
	engine := NewEngine(s.fake, nil)
	engine.SetRegistryOverride(common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"))
	got, err := engine.ResolveAddressSync("vitalik.eth", OnChainOnly)
	s.Require().NoError(err)
	s.Equal(want, got)
}

// parkedReader holds every registry read until release is closed.
type parkedReader struct {
	*fakeReader
	release chan struct{}
}

func (p *parkedReader) ReadContractToBytes(
	atBlock int64,
	from string,
	caddr string,
	a *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	<-p.release
	return p.fakeReader.ReadContractToBytes(atBlock, from, caddr, a, method, args...)
}

func (s *engineSuite) TestCallbackReturnsWhileCallInFlight() {
	want := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.serveAddr(want)

	parked := &parkedReader{fakeReader: s.fake, release: make(chan struct{})}
	engine := NewEngine(parked, networks.EthereumMainnet)

	done := make(chan common.Address, 1)
	returned := make(chan struct{})
	go func() {
		engine.ResolveAddress("vitalik.eth", OnChainOnly, func(addr common.Address, err error) {
			s.NoError(err)
			done <- addr
		})
		close(returned)
	}()

	// the callback form must hand control back before the chain call
	// completes
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		s.FailNow("ResolveAddress blocked the caller until the chain call completed")
	}

	close(parked.release)
	s.Equal(want, <-done)
}

func (s *engineSuite) TestCallbackDeliversOnce() {
	want := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.fake.setResolver("vitalik.eth", testResolverAddr)
	s.serveAddr(want)

	done := make(chan common.Address, 2)
	s.engine.ResolveAddress("vitalik.eth", OnChainOnly, func(addr common.Address, err error) {
		s.NoError(err)
		done <- addr
	})
	s.Equal(want, <-done)
	select {
	case <-done:
		s.Fail("callback invoked more than once")
	default:
	}
}
