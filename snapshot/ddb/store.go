/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/mapperconfig/errors"
	"github.com/suparena/mapperconfig/snapshot"
)

const (
	entityTypeHeader = "SnapshotHeader"
	entityTypeEntry  = "SnapshotEntry"
)

// API is the subset of the DynamoDB client the store uses.
type API interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Store implements snapshot.Store on a single DynamoDB table keyed by PK/SK.
type Store struct {
	client    API
	tableName string
	pageSize  int32
}

type headerItem struct {
	ID         string
	Source     string `dynamodbav:",omitempty"`
	CapturedAt string
	EntryCount int
}

type entryItem struct {
	SnapshotID string
	Seq        string
	Entry      snapshot.Entry
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when both keys are set; otherwise the default credential chain applies.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	var opts []func(*config.LoadOptions) error
	if awsRegion != "" {
		opts = append(opts, config.WithRegion(awsRegion))
	}
	if awsAccessKey != "" && awsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewStore creates a Store writing to tableName through client.
func NewStore(client API, tableName string) *Store {
	return &Store{client: client, tableName: tableName, pageSize: 100}
}

// WithPageSize sets the Query page size used by Load.
func (d *Store) WithPageSize(n int32) *Store {
	d.pageSize = n
	return d
}

// Save writes one item per entry followed by the header item. Entries left
// over from a longer snapshot with the same ID are ignored by Load.
func (d *Store) Save(ctx context.Context, s *snapshot.Snapshot) error {
	if s == nil {
		return errors.NewValidationError("", "snapshot is nil")
	}
	if s.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	for i, entry := range s.Entries {
		item := entryItem{SnapshotID: s.ID, Seq: seq(i), Entry: entry}
		if err := d.put(ctx, item, entryKeys, entityTypeEntry); err != nil {
			return fmt.Errorf("failed to save entry %q of snapshot %s: %w", entry.Name, s.ID, err)
		}
	}

	header := headerItem{
		ID:         s.ID,
		Source:     s.Source,
		CapturedAt: s.CapturedAt.String(),
		EntryCount: len(s.Entries),
	}
	if err := d.put(ctx, header, headerKeys, entityTypeHeader); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", s.ID, err)
	}
	return nil
}

func (d *Store) put(ctx context.Context, item any, keys map[string]string, entityType string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	expanded, err := expandMacros(keys, item)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av["EntityType"] = &types.AttributeValueMemberS{Value: entityType}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem error: %w", err)
	}
	return nil
}

// Load reads every item of the snapshot's partition, following pagination.
func (d *Store) Load(ctx context.Context, id string) (*snapshot.Snapshot, error) {
	pk, err := expandMacros(headerKeys, headerItem{ID: id})
	if err != nil {
		return nil, err
	}

	input := &sdk.QueryInput{
		TableName:              aws.String(d.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk["PK"]},
		},
		Limit: aws.Int32(d.pageSize),
	}

	var (
		header  *headerItem
		entries []entryItem
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		for _, item := range out.Items {
			var sk string
			if attr, ok := item["SK"]; ok {
				if err := attributevalue.Unmarshal(attr, &sk); err != nil {
					return nil, fmt.Errorf("failed to unmarshal SK: %w", err)
				}
			}

			switch {
			case sk == headerSK:
				h := &headerItem{}
				if err := attributevalue.UnmarshalMap(item, h); err != nil {
					return nil, fmt.Errorf("failed to unmarshal snapshot header: %w", err)
				}
				header = h
			case strings.HasPrefix(sk, entryPrefix):
				var e entryItem
				if err := attributevalue.UnmarshalMap(item, &e); err != nil {
					return nil, fmt.Errorf("failed to unmarshal snapshot entry %s: %w", sk, err)
				}
				entries = append(entries, e)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	if header == nil {
		return nil, errors.NewNotFoundError("Snapshot", id)
	}
	return assemble(header, entries)
}

func assemble(header *headerItem, items []entryItem) (*snapshot.Snapshot, error) {
	capturedAt, err := strfmt.ParseDateTime(header.CapturedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid capture time %q in snapshot %s: %w", header.CapturedAt, header.ID, err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })

	s := &snapshot.Snapshot{
		ID:         header.ID,
		Source:     header.Source,
		CapturedAt: capturedAt,
		Entries:    make([]snapshot.Entry, 0, header.EntryCount),
	}
	for _, item := range items {
		n, err := strconv.Atoi(item.Seq)
		if err != nil {
			return nil, fmt.Errorf("invalid entry sequence %q in snapshot %s: %w", item.Seq, header.ID, err)
		}
		if n >= header.EntryCount {
			continue
		}
		s.Entries = append(s.Entries, item.Entry)
	}
	return s, nil
}

var _ snapshot.Store = (*Store)(nil)
