package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex inv_01HV7T8ZKQ3M5X2J9Y4B6C8D0E
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

// GenerateShortIDWithPrefix returns an upper case short ID with a prefix,
// capped at 12 characters, e.g. `INV-XYZ12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(prefix + id)
}

const (
	UUID_PREFIX_USER                  = "user"
	UUID_PREFIX_CLIENT                = "cli"
	UUID_PREFIX_PROJECT               = "proj"
	UUID_PREFIX_INVOICE               = "inv"
	UUID_PREFIX_RECURRING_INVOICE     = "rinv"
	UUID_PREFIX_TEAM_MEMBER           = "tm"
	UUID_PREFIX_TIME_ENTRY            = "gte"
	UUID_PREFIX_JOB_COST              = "jc"
	UUID_PREFIX_INVENTORY_ITEM        = "item"
	UUID_PREFIX_INVENTORY_TRANSACTION = "itxn"
	UUID_PREFIX_CARBON_RECORD         = "co2"
	UUID_PREFIX_COMPLIANCE_DOCUMENT   = "doc"
	UUID_PREFIX_PORTAL_ACCESS         = "portal"
	UUID_PREFIX_PAYMENT               = "pay"
	UUID_PREFIX_EVENT                 = "evt"
)

const (
	SHORT_ID_PREFIX_INVOICE = "INV-"
	// recurring invoice numbers are REC-<unix millis>-<sequence>
	INVOICE_NUMBER_PREFIX_RECURRING = "REC"
)
