package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

func CurrentNetwork() Network {
	if cachedNetwork != nil {
		return cachedNetwork
	}

	SetNetwork(NetworkString)

	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	var err error

	cachedNetwork, err = GetNetwork(networkStr)
	if err != nil {
		cachedNetwork = EthereumMainnet
	}
}

var NetworkString string
