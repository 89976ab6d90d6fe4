/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Key templates for the single-table layout. Every item of one snapshot
// shares a partition; the header sorts after its entries.
var (
	headerKeys = map[string]string{
		"PK": "SNAPSHOT#{ID}",
		"SK": "HEADER",
	}
	entryKeys = map[string]string{
		"PK": "SNAPSHOT#{SnapshotID}",
		"SK": "ENTRY#{Seq}",
	}
)

const (
	headerSK    = "HEADER"
	entryPrefix = "ENTRY#"
	seqWidth    = 6
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills each template with the string form of the matching
// attribute of item. Unknown macros and non-scalar attributes expand to "".
func expandMacros(templates map[string]string, item any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key input: %w", err)
	}

	res := make(map[string]string, len(templates))
	for field, template := range templates {
		res[field] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			switch tv := av[strings.Trim(macro, "{}")].(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
	}
	return res, nil
}

// seq renders an entry position so that sort keys order numerically.
func seq(i int) string {
	return fmt.Sprintf("%0*d", seqWidth, i)
}
