package convert

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"pkt.systems/mdir"
)

const (
	codeParseFailed       = "MDIR_PARSE_FAILED"
	codeDecodeFailed      = "MDIR_DECODE_FAILED"
	codeStorageReadFailed = "MDIR_STORAGE_READ_FAILED"
	codeStorageWriteFail  = "MDIR_STORAGE_WRITE_FAILED"
	codeRenderFailed      = "MDIR_RENDER_FAILED"
	codeConfigInvalid     = "MDIR_CONFIG_INVALID"
)

func wrapParseError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "parse "+path).
		WithTextCode(codeParseFailed)
}

// wrapDecodeError classifies decoder failures. Structural errors from the
// IR are validation failures; anything else the decoder returns is treated
// as a command failure.
func wrapDecodeError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	var (
		verr *mdir.ValidationError
		cerr *mdir.CursorError
	)
	if errors.As(err, &verr) || errors.As(err, &cerr) {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "decode "+path).
			WithTextCode(codeDecodeFailed)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "decode "+path).
		WithTextCode(codeDecodeFailed)
}

func wrapReadError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "read "+path).
		WithTextCode(codeStorageReadFailed)
}

func wrapWriteError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "write "+path).
		WithTextCode(codeStorageWriteFail)
}

func wrapRenderError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "render "+path).
		WithTextCode(codeRenderFailed)
}

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "convert: invalid config").
		WithTextCode(codeConfigInvalid)
}

// IsValidation reports whether err was classified as a content problem
// (malformed Markdown or a record that does not match its decoder) rather
// than an I/O or rendering failure.
func IsValidation(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
