package fixtures

// SimpleStruct is the Go counterpart of the SimpleStruct contract type
type SimpleStruct struct {
	A uint32 `json:"a"`
	B bool   `json:"b"`
	C string `json:"c"`
}

// SimpleEnum is the Go counterpart of the SimpleEnum contract type
type SimpleEnum uint32

// SimpleEnum cases
const (
	SimpleEnumFirst SimpleEnum = iota
	SimpleEnumSecond
	SimpleEnumThird
)

// RoyalCard is the Go counterpart of the RoyalCard contract type
type RoyalCard uint32

// RoyalCard cases
const (
	RoyalCardJack  RoyalCard = 11
	RoyalCardQueen RoyalCard = 12
	RoyalCardKing  RoyalCard = 13
)

// TupleStruct is the Go counterpart of the TupleStruct contract type
type TupleStruct struct {
	Simple SimpleStruct `json:"0"`
	Enum   SimpleEnum   `json:"1"`
}

// ErrorNumberMustBeOdd is the code of Error::NumberMustBeOdd
const ErrorNumberMustBeOdd uint32 = 1
