package keygen

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"

	"golang.org/x/crypto/ssh"
)

// Export renders the pair as a PEM-encoded PKCS#1 private key plus an
// OpenSSH authorized_keys line. crypto/rsa keeps the public exponent in a
// machine int, so pairs built with a sampled 256 bit exponent cannot be
// exported and are reported as such.
func (kp *KeyPair) Export() (privPEM, pubOpenSSH []byte, err error) {
	if !kp.E.IsInt64() || kp.E.Int64() > int64(maxInt) {
		return nil, nil, fmt.Errorf("exponent %s too large to export", kp.E)
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).Mul(kp.P, kp.Q),
			E: int(kp.E.Int64()),
		},
		D:      new(big.Int).Set(kp.D),
		Primes: []*big.Int{new(big.Int).Set(kp.P), new(big.Int).Set(kp.Q)},
	}
	if err := key.Validate(); err != nil {
		return nil, nil, fmt.Errorf("assembled key failed validation: %w", err)
	}
	key.Precompute()

	privPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	sshPub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding public key: %w", err)
	}
	return privPEM, ssh.MarshalAuthorizedKey(sshPub), nil
}

const maxInt = int(^uint(0) >> 1)
