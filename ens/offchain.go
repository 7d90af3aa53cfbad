package ens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-3668: OffchainLookup(address,string[],bytes,bytes4,bytes)
var offchainLookupSelector = [4]byte{0x55, 0x6f, 0x18, 0x30}

var offchainLookupArgs = abi.Arguments{
	{Name: "sender", Type: mustNewType("address")},
	{Name: "urls", Type: mustNewType("string[]")},
	{Name: "callData", Type: mustNewType("bytes")},
	{Name: "callbackFunction", Type: mustNewType("bytes4")},
	{Name: "extraData", Type: mustNewType("bytes")},
}

var callbackArgs = abi.Arguments{
	{Name: "response", Type: mustNewType("bytes")},
	{Name: "extraData", Type: mustNewType("bytes")},
}

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

type offchainLookup struct {
	sender           common.Address
	urls             []string
	callData         []byte
	callbackFunction [4]byte
	extraData        []byte
}

// decodeOffchainLookupError extracts an OffchainLookup revert from a
// failed eth_call. Reverts travel as rpc.DataError with the raw return
// data hex-encoded; anything else is a plain failure.
func decodeOffchainLookupError(err error) (*offchainLookup, bool) {
	var de rpc.DataError
	if !errors.As(err, &de) {
		return nil, false
	}
	hexData, ok := de.ErrorData().(string)
	if !ok {
		return nil, false
	}
	data, decErr := hexutil.Decode(hexData)
	if decErr != nil {
		return nil, false
	}
	if len(data) < 4 || [4]byte(data[:4]) != offchainLookupSelector {
		return nil, false
	}
	out, unpackErr := offchainLookupArgs.Unpack(data[4:])
	if unpackErr != nil || len(out) != 5 {
		return nil, false
	}
	sender, ok1 := out[0].(common.Address)
	urls, ok2 := out[1].([]string)
	callData, ok3 := out[2].([]byte)
	callbackFn, ok4 := out[3].([4]byte)
	extraData, ok5 := out[4].([]byte)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, false
	}
	return &offchainLookup{
		sender:           sender,
		urls:             urls,
		callData:         callData,
		callbackFunction: callbackFn,
		extraData:        extraData,
	}, true
}

func callbackCalldata(l *offchainLookup, response []byte) ([]byte, error) {
	encoded, err := callbackArgs.Pack(response, l.extraData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return append(l.callbackFunction[:], encoded...), nil
}

var gatewayClient = &http.Client{
	Timeout: 10 * time.Second,
}

type gatewayResponse struct {
	Data string `json:"data"`
}

// fetchGateway queries the lookup's gateway URLs in order and returns the
// first successful response body. URLs containing a {data} placeholder
// are queried with GET, the rest with a JSON POST, per EIP-3668.
func fetchGateway(l *offchainLookup) ([]byte, error) {
	senderHex := strings.ToLower(l.sender.Hex())
	dataHex := hexutil.Encode(l.callData)

	errs := []error{}
	for _, tmpl := range l.urls {
		url := strings.ReplaceAll(tmpl, "{sender}", senderHex)

		var resp *http.Response
		var err error
		if strings.Contains(tmpl, "{data}") {
			url = strings.ReplaceAll(url, "{data}", dataHex)
			resp, err = gatewayClient.Get(url)
		} else {
			body, _ := json.Marshal(map[string]string{
				"data":   dataHex,
				"sender": senderHex,
			})
			resp, err = gatewayClient.Post(url, "application/json", bytes.NewReader(body))
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		payload, err := readGatewayResponse(resp)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tmpl, err))
			continue
		}
		return payload, nil
	}
	return nil, fmt.Errorf("no gateway could serve the lookup: %w", errors.Join(errs...))
}

func readGatewayResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	var gr gatewayResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	payload, err := hexutil.Decode(gr.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return payload, nil
}
