package signer

import (
	"crypto/hmac"
	"fmt"

	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
)

func digestMessage(desc algorithm.Descriptor, msg []byte) ([]byte, error) {
	if desc.Hash == algorithm.HashIntrinsic {
		return nil, fmt.Errorf("%s requires an explicit hash", desc.Name)
	}
	if !desc.Hash.Available() {
		return nil, fmt.Errorf("hash %v is not linked into the binary", desc.Hash)
	}
	h := desc.Hash.New()
	h.Write(msg)
	return h.Sum(nil), nil
}

func hmacSum(desc algorithm.Descriptor, msg, key []byte) ([]byte, error) {
	if desc.Hash == algorithm.HashIntrinsic {
		return nil, fmt.Errorf("%s requires an explicit hash", desc.Name)
	}
	if !desc.Hash.Available() {
		return nil, fmt.Errorf("hash %v is not linked into the binary", desc.Hash)
	}
	mac := hmac.New(desc.Hash.New, key)
	mac.Write(msg)
	return mac.Sum(nil), nil
}
