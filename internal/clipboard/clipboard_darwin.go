//go:build darwin && cgo

package clipboard

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>

// writeTextToPasteboard writes text to the macOS pasteboard.
// Returns 1 on success, 0 on failure.
int writeTextToPasteboard(const char *text, unsigned long length) {
    @autoreleasepool {
        NSPasteboard *pasteboard = [NSPasteboard generalPasteboard];
        [pasteboard clearContents];

        NSString *string = [[NSString alloc] initWithBytes:text length:length encoding:NSUTF8StringEncoding];
        if (string == nil) {
            return 0;
        }

        BOOL success = [pasteboard setString:string forType:NSPasteboardTypeString];
        return success ? 1 : 0;
    }
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/palaver-chat/palaver/internal/logger"
)

// Init is a no-op on macOS; the pasteboard needs no setup.
func Init() error {
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))

	result := C.writeTextToPasteboard(cText, C.ulong(len(text)))
	if result == 0 {
		return fmt.Errorf("failed to write text to clipboard")
	}

	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}
