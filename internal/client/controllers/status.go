package controllers

import (
	"sync"
	"time"
)

// MessageKind tells success and error messages apart.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageSuccess
	MessageError
)

// Message is the single transient status line of a controller.
type Message struct {
	Kind MessageKind
	Text string
}

func (m Message) IsZero() bool { return m.Kind == MessageNone }

// statusBoard holds one message. Setting a message cancels any pending
// auto-clear; a late timer callback never clears a newer message.
type statusBoard struct {
	mu    sync.Mutex
	sched Scheduler
	msg   Message
	gen   uint64
	timer Timer
}

func newStatusBoard(s Scheduler) *statusBoard {
	return &statusBoard{sched: s}
}

func (b *statusBoard) get() Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}

// set replaces the message. A positive ttl schedules its removal.
func (b *statusBoard) set(m Message, ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.gen++
	b.msg = m

	if ttl <= 0 || m.IsZero() {
		return
	}
	gen := b.gen
	b.timer = b.sched.AfterFunc(ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.msg = Message{}
			b.timer = nil
		}
	})
}

func (b *statusBoard) success(text string, ttl time.Duration) {
	b.set(Message{Kind: MessageSuccess, Text: text}, ttl)
}

func (b *statusBoard) fail(text string) {
	b.set(Message{Kind: MessageError, Text: text}, 0)
}

func (b *statusBoard) clear() {
	b.set(Message{}, 0)
}

// clearError drops the message only when it is an error.
func (b *statusBoard) clearError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.msg.Kind == MessageError {
		b.stopLocked()
		b.gen++
		b.msg = Message{}
	}
}

func (b *statusBoard) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
	b.gen++
}

func (b *statusBoard) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
