package types

import (
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex inv_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateInvoiceNumber returns a human-readable invoice number in the form
// FAC-<shortid>. Numbers are caller-facing labels, not identities, and are
// not guaranteed unique by the system.
func GenerateInvoiceNumber() string {
	once.Do(initializeSID)
	sid, err := sidGenerator.Generate()
	if err != nil {
		// shortid generation only fails on clock regression; fall back to ULID
		return fmt.Sprintf("FAC-%s", GenerateUUID())
	}
	return fmt.Sprintf("FAC-%s", sid)
}

const (
	UUID_PREFIX_CLIENT            = "cust"
	UUID_PREFIX_INVOICE           = "inv"
	UUID_PREFIX_INVOICE_LINE_ITEM = "inv_line"
	UUID_PREFIX_NOTIFICATION      = "notif"
)
