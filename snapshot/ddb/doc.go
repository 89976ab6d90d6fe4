/*
Package ddb stores registry snapshots in a DynamoDB table.

The table uses a single-table layout with string keys PK and SK. Keys are
expanded from macros over the stored item:

	header: PK = "SNAPSHOT#{ID}"          SK = "HEADER"
	entry:  PK = "SNAPSHOT#{SnapshotID}"  SK = "ENTRY#{Seq}"

Seq is the zero-padded position of the entry, so a partition query returns
entries in registration order. Every item carries an EntityType attribute.

	client, err := ddb.NewDynamoDBClient(ctx, accessKey, secretKey, region)
	if err != nil {
	    return err
	}
	store := ddb.NewStore(client, "mapperconfig-snapshots")
	err = store.Save(ctx, snap)
*/
package ddb
