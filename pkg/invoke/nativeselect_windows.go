//go:build windows

package invoke

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/arthur-debert/showinfm/pkg/errors"
)

var (
	modshell32 = windows.NewLazySystemDLL("shell32.dll")
	modole32   = windows.NewLazySystemDLL("ole32.dll")

	procILCreateFromPathW          = modshell32.NewProc("ILCreateFromPathW")
	procILFree                     = modshell32.NewProc("ILFree")
	procSHOpenFolderAndSelectItems = modshell32.NewProc("SHOpenFolderAndSelectItems")
	procCoInitializeEx             = modole32.NewProc("CoInitializeEx")
	procCoUninitialize             = modole32.NewProc("CoUninitialize")
)

const coinitApartmentThreaded = 0x2

// nativeSelect opens one Explorer window at the parent folder with all items
// selected, through the shell item-identifier-list API. Items that cannot be
// resolved to an identifier are skipped; selecting the rest is still better
// than failing the group.
func nativeSelect(parent string, items []string) error {
	_, _, _ = procCoInitializeEx.Call(0, coinitApartmentThreaded)
	defer func() { _, _, _ = procCoUninitialize.Call() }()

	parentIDL, err := ilCreateFromPath(parent)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLaunch, "failed to resolve folder %q", parent)
	}
	defer func() { _, _, _ = procILFree.Call(parentIDL) }()

	children := make([]uintptr, 0, len(items))
	for _, item := range items {
		idl, err := ilCreateFromPath(item)
		if err != nil {
			continue
		}
		//nolint:gocritic // freed after SHOpenFolderAndSelectItems returns
		defer func() { _, _, _ = procILFree.Call(idl) }()
		children = append(children, idl)
	}

	var first *uintptr
	if len(children) > 0 {
		first = &children[0]
	}

	hr, _, _ := procSHOpenFolderAndSelectItems.Call(
		parentIDL,
		uintptr(len(children)),
		uintptr(unsafe.Pointer(first)),
		0,
	)
	if int32(hr) < 0 {
		return errors.Newf(errors.ErrLaunch,
			"SHOpenFolderAndSelectItems failed with HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

func ilCreateFromPath(path string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	ret, _, _ := procILCreateFromPathW.Call(uintptr(unsafe.Pointer(p)))
	if ret == 0 {
		return 0, errors.Newf(errors.ErrLaunch, "no shell item for path %q", path)
	}
	return ret, nil
}
