package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/crypto"
	"github.com/safehold/safehold/errors"
)

// signPrefix versions the layout built by BuildSignBytes.
var signPrefix = []byte("SHv1")

// VerifyTxSignatures checks every signature of tx and advances each
// signer's sequence. The first invalid signature fails the whole tx.
func VerifyTxSignatures(db safehold.KVStore, tx SignedTx, chainID string) ([]safehold.Condition, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]safehold.Condition, 0, len(sigs))
	for _, sig := range sigs {
		signer, err := VerifySignature(db, sig, bz, chainID)
		if err != nil {
			return nil, err
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks a single signature over signBytes and, when it is
// valid, stores the signer with its sequence incremented. A signer seen for
// the first time must use sequence zero.
func VerifySignature(db safehold.KVStore, sig *StdSignature, signBytes []byte, chainID string) (safehold.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	bucket := NewBucket()
	user, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

// BuildSignBytes returns the sha512 digest that is actually signed:
//
//	prefix | len(chainID) | chainID | sequence     | message
//	4      | 1            | ascii   | 8, bigendian | serialized tx
//
// Binding chain and sequence stops a signed escrow operation from being
// replayed on another chain or a second time on this one.
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !safehold.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	buf := make([]byte, 0, len(signPrefix)+1+len(chainID)+8+len(signBytes))
	buf = append(buf, signPrefix...)
	buf = append(buf, uint8(len(chainID)))
	buf = append(buf, chainID...)
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	buf = append(buf, nonce[:]...)
	buf = append(buf, signBytes...)

	digest := sha512.Sum512(buf)
	return digest[:], nil
}

// SignTx signs tx for chainID with the given sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(bz, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}
