package goJOSE

import (
	"crypto/hmac"
	"fmt"
)

func computeHMAC(secret, content []byte, info algorithmInfo) []byte {
	mac := hmac.New(info.hash.New, secret)
	mac.Write(content)
	return mac.Sum(nil)
}

func signHMAC(secret, content []byte, info algorithmInfo) ([]byte, error) {
	return computeHMAC(secret, content, info), nil
}

func verifyHMAC(secret, content, signature []byte, info algorithmInfo) (bool, error) {
	if len(signature) != info.sigSize {
		return false, fmt.Errorf("%w: HMAC signature must be %d bytes, got %d",
			ErrMalformedSignature, info.sigSize, len(signature))
	}
	// hmac.Equal visits every byte regardless of mismatch position.
	return hmac.Equal(computeHMAC(secret, content, info), signature), nil
}
