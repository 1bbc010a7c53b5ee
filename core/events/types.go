package events

import (
	"math/big"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/tendermint/go-amino"
)

// Event type names
const (
	TypeDepositEvent          = "stakeport/DepositEvent"
	TypeInitiateWithdrawEvent = "stakeport/InitiateWithdrawEvent"
	TypeWithdrawEvent         = "stakeport/WithdrawEvent"
	TypeRestakeEvent          = "stakeport/RestakeEvent"
	TypeSetCooldownEvent      = "stakeport/SetCooldownEvent"
)

func RegisterAminoEvents(codec *amino.Codec) {
	codec.RegisterInterface((*Event)(nil), nil)
	codec.RegisterConcrete(DepositEvent{},
		TypeDepositEvent, nil)
	codec.RegisterConcrete(InitiateWithdrawEvent{},
		TypeInitiateWithdrawEvent, nil)
	codec.RegisterConcrete(WithdrawEvent{},
		TypeWithdrawEvent, nil)
	codec.RegisterConcrete(RestakeEvent{},
		TypeRestakeEvent, nil)
	codec.RegisterConcrete(SetCooldownEvent{},
		TypeSetCooldownEvent, nil)
}

type Event interface {
	Type() string
	AddressString() string
	address() types.Address
	convert(addressID uint32) compactEvent
}

type compactEvent interface {
	compile(address [20]byte) Event
	addressID() uint32
}

type Events []Event

type deposit struct {
	AddressID uint32
	Amount    []byte
	Nonce     uint64
	Timestamp uint64
}

func (d *deposit) compile(address [20]byte) Event {
	event := new(DepositEvent)
	event.Address = address
	event.Amount = big.NewInt(0).SetBytes(d.Amount).String()
	event.Nonce = d.Nonce
	event.Timestamp = d.Timestamp
	return event
}

func (d *deposit) addressID() uint32 {
	return d.AddressID
}

// DepositEvent is emitted when a deposit opens a new position.
type DepositEvent struct {
	Address   types.Address `json:"address"`
	Amount    string        `json:"amount"`
	Nonce     uint64        `json:"nonce"`
	Timestamp uint64        `json:"timestamp"`
}

func (de *DepositEvent) Type() string {
	return TypeDepositEvent
}

func (de *DepositEvent) AddressString() string {
	return de.Address.String()
}

func (de *DepositEvent) address() types.Address {
	return de.Address
}

func (de *DepositEvent) convert(addressID uint32) compactEvent {
	result := new(deposit)
	result.AddressID = addressID
	bi, _ := big.NewInt(0).SetString(de.Amount, 10)
	result.Amount = bi.Bytes()
	result.Nonce = de.Nonce
	result.Timestamp = de.Timestamp
	return result
}

type initiateWithdraw struct {
	AddressID uint32
	Nonce     uint64
	UnlocksAt uint64
	Timestamp uint64
}

func (iw *initiateWithdraw) compile(address [20]byte) Event {
	event := new(InitiateWithdrawEvent)
	event.Address = address
	event.Nonce = iw.Nonce
	event.UnlocksAt = iw.UnlocksAt
	event.Timestamp = iw.Timestamp
	return event
}

func (iw *initiateWithdraw) addressID() uint32 {
	return iw.AddressID
}

// InitiateWithdrawEvent is emitted when a position enters the cooldown.
type InitiateWithdrawEvent struct {
	Address   types.Address `json:"address"`
	Nonce     uint64        `json:"nonce"`
	UnlocksAt uint64        `json:"unlocks_at"`
	Timestamp uint64        `json:"timestamp"`
}

func (iwe *InitiateWithdrawEvent) Type() string {
	return TypeInitiateWithdrawEvent
}

func (iwe *InitiateWithdrawEvent) AddressString() string {
	return iwe.Address.String()
}

func (iwe *InitiateWithdrawEvent) address() types.Address {
	return iwe.Address
}

func (iwe *InitiateWithdrawEvent) convert(addressID uint32) compactEvent {
	result := new(initiateWithdraw)
	result.AddressID = addressID
	result.Nonce = iwe.Nonce
	result.UnlocksAt = iwe.UnlocksAt
	result.Timestamp = iwe.Timestamp
	return result
}

type withdraw struct {
	AddressID uint32
	Amount    []byte
	Nonce     uint64
	Timestamp uint64
}

func (w *withdraw) compile(address [20]byte) Event {
	event := new(WithdrawEvent)
	event.Address = address
	event.Amount = big.NewInt(0).SetBytes(w.Amount).String()
	event.Nonce = w.Nonce
	event.Timestamp = w.Timestamp
	return event
}

func (w *withdraw) addressID() uint32 {
	return w.AddressID
}

// WithdrawEvent is emitted when a cooled-down position is paid out.
type WithdrawEvent struct {
	Address   types.Address `json:"address"`
	Amount    string        `json:"amount"`
	Nonce     uint64        `json:"nonce"`
	Timestamp uint64        `json:"timestamp"`
}

func (we *WithdrawEvent) Type() string {
	return TypeWithdrawEvent
}

func (we *WithdrawEvent) AddressString() string {
	return we.Address.String()
}

func (we *WithdrawEvent) address() types.Address {
	return we.Address
}

func (we *WithdrawEvent) convert(addressID uint32) compactEvent {
	result := new(withdraw)
	result.AddressID = addressID
	bi, _ := big.NewInt(0).SetString(we.Amount, 10)
	result.Amount = bi.Bytes()
	result.Nonce = we.Nonce
	result.Timestamp = we.Timestamp
	return result
}

type restake struct {
	AddressID uint32
	Amount    []byte
	Nonce     uint64
	Timestamp uint64
}

func (r *restake) compile(address [20]byte) Event {
	event := new(RestakeEvent)
	event.Address = address
	event.Amount = big.NewInt(0).SetBytes(r.Amount).String()
	event.Nonce = r.Nonce
	event.Timestamp = r.Timestamp
	return event
}

func (r *restake) addressID() uint32 {
	return r.AddressID
}

// RestakeEvent is emitted when an initiated withdrawal is cancelled and
// the position becomes active again.
type RestakeEvent struct {
	Address   types.Address `json:"address"`
	Amount    string        `json:"amount"`
	Nonce     uint64        `json:"nonce"`
	Timestamp uint64        `json:"timestamp"`
}

func (re *RestakeEvent) Type() string {
	return TypeRestakeEvent
}

func (re *RestakeEvent) AddressString() string {
	return re.Address.String()
}

func (re *RestakeEvent) address() types.Address {
	return re.Address
}

func (re *RestakeEvent) convert(addressID uint32) compactEvent {
	result := new(restake)
	result.AddressID = addressID
	bi, _ := big.NewInt(0).SetString(re.Amount, 10)
	result.Amount = bi.Bytes()
	result.Nonce = re.Nonce
	result.Timestamp = re.Timestamp
	return result
}

type setCooldown struct {
	AddressID uint32
	Period    uint64
	Timestamp uint64
}

func (sc *setCooldown) compile(address [20]byte) Event {
	event := new(SetCooldownEvent)
	event.Address = address
	event.Period = sc.Period
	event.Timestamp = sc.Timestamp
	return event
}

func (sc *setCooldown) addressID() uint32 {
	return sc.AddressID
}

// SetCooldownEvent is emitted when the admin changes the cooldown period.
type SetCooldownEvent struct {
	Address   types.Address `json:"address"`
	Period    uint64        `json:"period"`
	Timestamp uint64        `json:"timestamp"`
}

func (sce *SetCooldownEvent) Type() string {
	return TypeSetCooldownEvent
}

func (sce *SetCooldownEvent) AddressString() string {
	return sce.Address.String()
}

func (sce *SetCooldownEvent) address() types.Address {
	return sce.Address
}

func (sce *SetCooldownEvent) convert(addressID uint32) compactEvent {
	result := new(setCooldown)
	result.AddressID = addressID
	result.Period = sce.Period
	result.Timestamp = sce.Timestamp
	return result
}
