package code

import (
	"strconv"
)

// Codes for ledger operation responses
const (
	// general
	OK           uint32 = 0
	DecodeError  uint32 = 101
	Unauthorized uint32 = 102

	// positions
	InvalidAmount    uint32 = 201
	PositionNotFound uint32 = 202
	InvalidState     uint32 = 203
	NotYetUnlocked   uint32 = 204
	TransferFailed   uint32 = 205

	// admin
	InvalidPeriod uint32 = 301
)

type decodeError struct {
	Code string `json:"code,omitempty"`
}

func NewDecodeError() *decodeError {
	return &decodeError{Code: strconv.Itoa(int(DecodeError))}
}

type unauthorized struct {
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewUnauthorized(address string) *unauthorized {
	return &unauthorized{Code: strconv.Itoa(int(Unauthorized)), Address: address}
}

type invalidAmount struct {
	Code   string `json:"code,omitempty"`
	Amount string `json:"amount,omitempty"`
}

func NewInvalidAmount(amount string) *invalidAmount {
	return &invalidAmount{Code: strconv.Itoa(int(InvalidAmount)), Amount: amount}
}

type positionNotFound struct {
	Code  string `json:"code,omitempty"`
	Owner string `json:"owner,omitempty"`
	Nonce string `json:"nonce,omitempty"`
}

func NewPositionNotFound(owner string, nonce uint64) *positionNotFound {
	return &positionNotFound{Code: strconv.Itoa(int(PositionNotFound)), Owner: owner, Nonce: strconv.FormatUint(nonce, 10)}
}

type invalidState struct {
	Code   string `json:"code,omitempty"`
	Owner  string `json:"owner,omitempty"`
	Nonce  string `json:"nonce,omitempty"`
	Status string `json:"status,omitempty"`
}

func NewInvalidState(owner string, nonce uint64, status string) *invalidState {
	return &invalidState{Code: strconv.Itoa(int(InvalidState)), Owner: owner, Nonce: strconv.FormatUint(nonce, 10), Status: status}
}

type notYetUnlocked struct {
	Code      string `json:"code,omitempty"`
	Owner     string `json:"owner,omitempty"`
	Nonce     string `json:"nonce,omitempty"`
	UnlocksAt string `json:"unlocks_at,omitempty"`
	Now       string `json:"now,omitempty"`
}

func NewNotYetUnlocked(owner string, nonce uint64, unlocksAt uint64, now uint64) *notYetUnlocked {
	return &notYetUnlocked{
		Code:      strconv.Itoa(int(NotYetUnlocked)),
		Owner:     owner,
		Nonce:     strconv.FormatUint(nonce, 10),
		UnlocksAt: strconv.FormatUint(unlocksAt, 10),
		Now:       strconv.FormatUint(now, 10),
	}
}

type transferFailed struct {
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func NewTransferFailed(reason string) *transferFailed {
	return &transferFailed{Code: strconv.Itoa(int(TransferFailed)), Reason: reason}
}

type invalidPeriod struct {
	Code string `json:"code,omitempty"`
}

func NewInvalidPeriod() *invalidPeriod {
	return &invalidPeriod{Code: strconv.Itoa(int(InvalidPeriod))}
}
