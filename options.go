/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gollowmap

import "math/bits"

const (
	DefaultInitialCapacity = 16
	DefaultLowerBound      = 0.25
	DefaultUpperBound      = 0.75
)

// Construction parameters of a Table. InitialCapacity is also the floor
// below which the table never shrinks.
type TableOption struct {
	InitialCapacity int
	LowerBound      float64
	UpperBound      float64
}

func NewTableOption() *TableOption {
	return &TableOption{
		InitialCapacity: DefaultInitialCapacity,
		LowerBound:      DefaultLowerBound,
		UpperBound:      DefaultUpperBound,
	}
}

func (i *TableOption) SetInitialCapacity(capacity int) {
	i.InitialCapacity = capacity
}

func (i *TableOption) SetBounds(lowerBound float64, upperBound float64) {
	i.LowerBound = lowerBound
	i.UpperBound = upperBound
}

func (i *TableOption) SetLowerBound(lowerBound float64) {
	i.LowerBound = lowerBound
}

func (i *TableOption) SetUpperBound(upperBound float64) {
	i.UpperBound = upperBound
}

// Validate checks the bounds are ordered and inside [0,1] and the initial
// capacity is a power of two.
func (i *TableOption) Validate() error {
	if i.LowerBound >= i.UpperBound {
		return &ConfigError{Reason: "lower bound must be strictly below upper bound"}
	}
	if i.LowerBound < 0 || i.LowerBound > 1 || i.UpperBound < 0 || i.UpperBound > 1 {
		return &ConfigError{Reason: "load factor bounds must lie in [0,1]"}
	}
	if !isPowerOfTwo(i.InitialCapacity) {
		return &ConfigError{Reason: "initial capacity must be a power of two"}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
