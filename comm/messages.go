// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package comm

// MessageType represents message type identificator
type MessageType int64

const (
	// OutcomeMsg message type is used to share finalized request outcomes to all replicas
	OutcomeMsg MessageType = iota
	// Unknown message type
	Unknown
)

const (
	OutcomeSessionID = "outcomes"
)

// String implements fmt.Stringer
func (msgType MessageType) String() string {
	switch msgType {
	case OutcomeMsg:
		return "OutcomeMsg"
	default:
		return "UnknownMsg"
	}
}
