package export

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[voxeltiler] ", log.LstdFlags)
