package create_booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referencePrefix = "BLR"

// newReference генерирует человекочитаемый идентификатор бронирования:
// BLR-<метка времени в base36>-<4 случайных символа>.
// Уникальность гарантирует constraint БД, коллизия решается повторной
// генерацией.
func newReference() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]

	return referencePrefix + "-" + timestamp + "-" + random
}
