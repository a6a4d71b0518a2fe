package issue

import (
	"strconv"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash 64 bit digest of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns a stable issue identifier, independent of line shifts
func Fingerprint(issue Issue) (string, error) {
	value, err := Hash([]byte(issue.Rule + "\x00" + issue.Location.File + "\x00" + issue.Symbol))
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(value, 16), nil
}
