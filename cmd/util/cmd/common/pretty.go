package common

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// PrettyPrintEntity prints the given value as indented JSON to stdout.
func PrettyPrintEntity(entity interface{}) {
	bytes, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("could not marshal entity")
	}

	fmt.Println(string(bytes))
}

// PrettyPrint prints each of the given values as indented JSON.
func PrettyPrint[T any](entities []T) {
	for _, entity := range entities {
		PrettyPrintEntity(entity)
	}
}
