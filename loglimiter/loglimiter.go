// gaze-player - foreground/background aware video compression simulator
//  Copyright (C) 2025, The LayeredVideo Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package loglimiter

import (
	"fmt"
	"log"
	"time"
)

// New returns a LogLimiter with the given minimum interval between
// repeats of the same message.
func New(interval time.Duration) *LogLimiter {
	return &LogLimiter{
		interval: interval,
		clock:    time.Now,
	}
}

// LogLimiter drops a log message when it is identical to the most recently
// logged message and that message was logged within the interval. A paused
// player repeats the same line on every poll; this keeps the journal
// readable. A message that differs from the previous one is always logged,
// even if it already appeared earlier within the interval.
type LogLimiter struct {
	interval time.Duration
	clock    func() time.Time
	lastMsg  string
	lastTime time.Time
}

func (l *LogLimiter) Printf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(format, v...))
}

func (l *LogLimiter) Print(msg string) {
	now := l.clock()
	if msg == l.lastMsg && now.Sub(l.lastTime) < l.interval {
		return
	}
	log.Print(msg)
	l.lastMsg = msg
	l.lastTime = now
}
