package utils

import (
	"math/rand/v2"
	"strconv"
)

// Friend codes are six digit numbers in [minFriendCode, maxFriendCode).
const (
	minFriendCode = 100000
	maxFriendCode = 999999
)

// FriendCodeGenerator produces local chat identity codes.
type FriendCodeGenerator struct {
}

func NewFriendCodeGenerator() *FriendCodeGenerator {
	return &FriendCodeGenerator{}
}

func (g *FriendCodeGenerator) Generate() string {
	return strconv.Itoa(minFriendCode + rand.IntN(maxFriendCode-minFriendCode))
}
