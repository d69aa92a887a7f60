package service

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const referralCodeLength = 8

// No 0, O, 1 or I: codes get read aloud and typed from phone screens.
const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func isReferralChar(char rune) bool {
	return strings.ContainsRune(referralAlphabet, char)
}

func generateReferralCode() (string, error) {
	var sb strings.Builder
	sb.Grow(referralCodeLength)
	for i := 0; i < referralCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralAlphabet))))
		if err != nil {
			return "", errors.New("generating referral code error: " + err.Error())
		}
		sb.WriteByte(referralAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
