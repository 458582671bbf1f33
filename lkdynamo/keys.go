// Package lkdynamo provides single-table DynamoDB helpers: key attribute
// builders, item post-processing, and a small typed store. The key schema
// matches the table construct in infra/cdk: partition key "pk", sort key
// "sk", and two global secondary indexes "gsi1" and "gsi2".
package lkdynamo

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Key attribute names of the single-table schema.
const (
	AttrPK     = "pk"
	AttrSK     = "sk"
	AttrGSI1PK = "gsi1pk"
	AttrGSI1SK = "gsi1sk"
	AttrGSI2PK = "gsi2pk"
	AttrGSI2SK = "gsi2sk"
)

// keyAttributes are internal to the storage layout and are stripped from
// items before they leave the service.
var keyAttributes = []string{AttrPK, AttrSK, AttrGSI1PK, AttrGSI1SK, AttrGSI2PK, AttrGSI2SK}

// Key formats a composite key attribute value, e.g. Key("ITEM", "42")
// returns "ITEM#42".
func Key(segments ...string) string {
	return strings.Join(segments, "#")
}

// StripKeys returns a copy of the item without table and index key
// attributes. The input map is not mutated. Nil input returns nil.
func StripKeys(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(item))
	for name, av := range item {
		out[name] = av
	}
	for _, name := range keyAttributes {
		delete(out, name)
	}
	return out
}

// StripKeysAll applies StripKeys to every item in the slice.
func StripKeysAll(items []map[string]types.AttributeValue) []map[string]types.AttributeValue {
	out := make([]map[string]types.AttributeValue, len(items))
	for i, item := range items {
		out[i] = StripKeys(item)
	}
	return out
}
