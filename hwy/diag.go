package hwy

import (
	"sync"
	"sync/atomic"
)

var (
	panicHookOnce sync.Once
	panicHook     atomic.Bool
)

// InstallPanicHook enables ReportPanic process-wide. It may be called any
// number of times; only the first call has an effect.
//
// The hook only adds a log record. A kernel that faults still aborts the call.
func InstallPanicHook() {
	panicHookOnce.Do(func() {
		panicHook.Store(true)
		Logger().Info("panic hook installed", "level", CurrentName())
	})
}

// PanicHookInstalled reports whether InstallPanicHook has run.
func PanicHookInstalled() bool {
	return panicHook.Load()
}

// ReportPanic must be deferred directly by a boundary entry point:
//
//	func blur(ptr unsafe.Pointer, n, w, h uint32) {
//	    defer hwy.ReportPanic("blur")
//	    ...
//	}
//
// When the hook is installed and the kernel panics, the panic value is logged
// at error level with the kernel name and then re-raised.
func ReportPanic(kernel string) {
	if !panicHook.Load() {
		return
	}
	if r := recover(); r != nil {
		Logger().Error("kernel aborted", "kernel", kernel, "panic", r)
		panic(r)
	}
}
