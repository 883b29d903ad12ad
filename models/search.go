package models

import (
	"reflect"
	"strings"

	"github.com/supakorn-kn/go-library/errors"
)

type MatchType uint8

const (
	EqualMatchType     MatchType = 0
	PartialMatchType   MatchType = 1
	StartWithMatchType MatchType = 2
	EndWithMatchType   MatchType = 3
)

type MatchOption struct {
	MatchType MatchType `json:"match_type"`
	Value     string    `json:"value"`
}

func (opt MatchOption) IsNil() bool {
	return reflect.ValueOf(opt).IsZero()
}

func (opt MatchOption) Validate() error {

	if opt.MatchType > EndWithMatchType {
		return errors.MatchTypeInvalidError.New(opt.MatchType)
	}

	return nil
}

// Match tests value against the option. Equal match is case-sensitive, the others are not.
func (opt MatchOption) Match(value string) bool {

	switch opt.MatchType {

	case EqualMatchType:
		return EqualMatch(value, opt.Value)

	case PartialMatchType:
		return PartialMatch(value, opt.Value)

	case StartWithMatchType:
		return StartWithMatch(value, opt.Value)

	case EndWithMatchType:
		return EndWithMatch(value, opt.Value)

	default:
		return false
	}
}

// EqualMatch is for equal search (Case-sensitive)
func EqualMatch(value, keyword string) bool {
	return value == keyword
}

// PartialMatch is for partial search (Case-insensitive)
func PartialMatch(value, keyword string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(keyword))
}

// StartWithMatch is for start with keyword search (Case-insensitive)
func StartWithMatch(value, keyword string) bool {
	return strings.HasPrefix(strings.ToLower(value), strings.ToLower(keyword))
}

// EndWithMatch is for end with keyword search (Case-insensitive)
func EndWithMatch(value, keyword string) bool {
	return strings.HasSuffix(strings.ToLower(value), strings.ToLower(keyword))
}
