package app

import (
	"strings"
	"sync"

	"quarkview/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = byte(p), byte(p>>8)
	}
}

func (f *testFB) pixel(x, y int) uint16 {
	off := y*f.StrideBytes() + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type testLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLog) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type testKeys chan hal.KeyEvent

func (k testKeys) Events() <-chan hal.KeyEvent { return k }

type testClock chan uint64

func (c testClock) Ticks() <-chan uint64 { return c }

type testHAL struct {
	log   *testLog
	fb    *testFB
	keys  testKeys
	clock testClock
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		log:   &testLog{},
		fb:    &testFB{w: w, h: h, buf: make([]byte, w*h*2)},
		keys:  make(testKeys, 64),
		clock: make(testClock, 64),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return h.clock }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.keys }

func (h *testHAL) press(code hal.KeyCode) { h.keys <- hal.KeyEvent{Code: code, Press: true} }
func (h *testHAL) typeRune(r rune)        { h.keys <- hal.KeyEvent{Press: true, Rune: r} }
