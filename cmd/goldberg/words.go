// SPDX-License-Identifier: MIT

package main

import "strings"

// wordList is a repeatable flag; each occurrence may also hold several
// comma-separated words.
type wordList []string

func (l *wordList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *wordList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}
