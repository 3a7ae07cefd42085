package errors_test

import (
	"fmt"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

func ExampleWrap() {
	err := errors.Wrap(errors.New("connection refused"), "cannot load customers")
	fmt.Println(errors.Format(err))
	fmt.Println(errors.Format(err, errors.FormatWithUnwrap()))
	// output:
	// cannot load customers
	// cannot load customers:
	//   - connection refused
}

func ExampleFormatAsSentences() {
	err := errors.NewNestedError(
		errors.New("invalid configuration"),
		errors.New("missing api url"),
		errors.New("auth url must be a valid URL"),
	)
	fmt.Println("Standard output:")
	fmt.Println(errors.Format(err))
	fmt.Println()
	fmt.Println("FormatAsSentences:")
	fmt.Println(errors.Format(err, errors.FormatAsSentences()))
	// output:
	// Standard output:
	// invalid configuration:
	// - missing api url
	// - auth url must be a valid URL
	//
	// FormatAsSentences:
	// Invalid configuration:
	// - Missing api url.
	// - Auth url must be a valid URL.
}

func Example_multiError() {
	errs := errors.NewMultiError()
	errs.Append(errors.New("foo 1"))
	errs.Append(errors.New("foo 2"))

	sub := errs.AppendNested(errors.New("some sub error"))
	sub.Append(errors.New("foo 3"))
	sub.Append(errors.New("foo 4"))

	errs.AppendWithPrefixf(errors.New("nested error"), "some %s", "prefix")

	fmt.Println(errors.Format(errs))
	fmt.Println()
	fmt.Println(errors.Format(errors.PrefixError(errs, "Error"), errors.FormatAsSentences()))
	// output:
	// - foo 1
	// - foo 2
	// - some sub error:
	//   - foo 3
	//   - foo 4
	// - some prefix: nested error
	//
	// Error:
	// - Foo 1.
	// - Foo 2.
	// - Some sub error:
	//   - Foo 3.
	//   - Foo 4.
	// - Some prefix: nested error.
}
