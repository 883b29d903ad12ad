package mongostore

import (
	"context"
	"fmt"
	"slices"

	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/mongodb"
	"github.com/supakorn-kn/go-library/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BooksCollectionName   = "catalog_books"
	MembersCollectionName = "catalog_members"

	titleIndex    = "title_1"
	memberIDIndex = "member_id_1"
	seqIndex      = "seq_1"
)

type bookDocument struct {
	Seq                int `bson:"seq"`
	objects.BookRecord `bson:",inline"`
}

type memberDocument struct {
	Seq                  int `bson:"seq"`
	objects.MemberRecord `bson:",inline"`
}

// storedMemberDocument tolerates missing fields and non-array borrowed_books
type storedMemberDocument struct {
	Name          *string       `bson:"name"`
	MemberID      *int          `bson:"member_id"`
	BorrowedBooks bson.RawValue `bson:"borrowed_books"`
}

// Store keeps books and members in two collections ordered by seq
type Store struct {
	books   *mongo.Collection
	members *mongo.Collection
}

func New(conn *mongodb.MongoDBConn) (*Store, error) {

	booksColl, err := createCollection(conn, BooksCollectionName, booksValidator())
	if err != nil {
		return nil, err
	}

	if err := createIndexes(booksColl, titleIndex, "title"); err != nil {
		return nil, err
	}

	membersColl, err := createCollection(conn, MembersCollectionName, membersValidator())
	if err != nil {
		return nil, err
	}

	if err := createIndexes(membersColl, memberIDIndex, "member_id"); err != nil {
		return nil, err
	}

	return &Store{books: booksColl, members: membersColl}, nil
}

func (s *Store) Load(ctx context.Context) (objects.CatalogRecord, error) {

	record := objects.CatalogRecord{Books: []objects.BookRecord{}, Members: []objects.MemberRecord{}}
	findOptions := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

	cur, err := s.books.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return objects.CatalogRecord{}, err
	}

	var bookDocs []objects.BookDocument
	if err := cur.All(ctx, &bookDocs); err != nil {
		return objects.CatalogRecord{}, errors.PersistenceReadCorruptError.New(err)
	}

	record.Books = objects.BookRecordsFrom(bookDocs)

	cur, err = s.members.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return objects.CatalogRecord{}, err
	}

	var memberDocs []storedMemberDocument
	if err := cur.All(ctx, &memberDocs); err != nil {
		return objects.CatalogRecord{}, errors.PersistenceReadCorruptError.New(err)
	}

	for _, doc := range memberDocs {

		borrowed, err := decodeBorrowedBooks(doc.BorrowedBooks)
		if err != nil {
			return objects.CatalogRecord{}, errors.PersistenceReadCorruptError.New(err)
		}

		record.Members = append(record.Members, objects.NewMemberRecord(doc.Name, doc.MemberID, borrowed))
	}

	return record, nil
}

// Save replaces stored books and members with record
func (s *Store) Save(ctx context.Context, record objects.CatalogRecord) error {

	bookDocs := make([]any, 0, len(record.Books))
	for i, book := range record.Books {
		bookDocs = append(bookDocs, bookDocument{Seq: i, BookRecord: book})
	}

	memberDocs := make([]any, 0, len(record.Members))
	for i, member := range record.Members {

		if member.BorrowedBooks == nil {
			member.BorrowedBooks = []objects.BookRecord{}
		}

		memberDocs = append(memberDocs, memberDocument{Seq: i, MemberRecord: member})
	}

	if err := replaceAll(ctx, s.books, bookDocs); err != nil {
		return fmt.Errorf("save books: %w", err)
	}

	if err := replaceAll(ctx, s.members, memberDocs); err != nil {
		return fmt.Errorf("save members: %w", err)
	}

	return nil
}

func replaceAll(ctx context.Context, coll *mongo.Collection, docs []any) error {

	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}

	if len(docs) == 0 {
		return nil
	}

	_, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

func decodeBorrowedBooks(raw bson.RawValue) ([]objects.BookRecord, error) {

	if raw.Type != bsontype.Array {
		return []objects.BookRecord{}, nil
	}

	var docs []objects.BookDocument
	if err := raw.Unmarshal(&docs); err != nil {
		return nil, err
	}

	return objects.BookRecordsFrom(docs), nil
}

func createCollection(conn *mongodb.MongoDBConn, collectionName string, validator bson.D) (*mongo.Collection, error) {

	catalogDB := conn.GetDatabase()

	collectionNameList, err := catalogDB.ListCollectionNames(context.Background(), bson.D{})
	if err != nil {
		return nil, err
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		result := catalogDB.RunCommand(context.Background(), cmd, options.RunCmd())
		if err := result.Err(); err != nil {
			return nil, err
		}

		return conn.GetCollection(collectionName), nil
	}

	collectionOptions := options.CreateCollection()
	collectionOptions.SetValidator(validator)
	collectionOptions.SetValidationLevel("strict")

	err = catalogDB.CreateCollection(context.Background(), collectionName, collectionOptions)
	if err != nil {
		return nil, err
	}

	return conn.GetCollection(collectionName), nil
}

func createIndexes(coll *mongo.Collection, uniqueIndexName, uniqueKey string) error {

	cur, err := coll.Indexes().List(context.Background())
	if err != nil {
		return err
	}

	var indexes []bson.M
	err = cur.All(context.Background(), &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == uniqueIndexName
	})

	if !contains {

		indexModelOptions := options.Index().SetName(uniqueIndexName).SetUnique(true)
		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: uniqueKey, Value: 1},
			},
			Options: indexModelOptions,
		}

		_, err = coll.Indexes().CreateOne(context.Background(), indexModel)
		if err != nil {
			return err
		}
	}

	contains = slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == seqIndex
	})

	if !contains {

		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: "seq", Value: 1}},
			Options: options.Index().SetName(seqIndex),
		}

		_, err = coll.Indexes().CreateOne(context.Background(), indexModel)
		if err != nil {
			return err
		}
	}

	return nil
}

func booksValidator() bson.D {

	return bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"title": bson.M{
						"bsonType":    "string",
						"description": "Title must be a string",
					},
					"author": bson.M{
						"bsonType":    "string",
						"description": "Author must be a string",
					},
					"is_available": bson.M{
						"bsonType":    "bool",
						"description": "Availability must be a boolean",
					},
				},
			},
		},
	}
}

func membersValidator() bson.D {

	return bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"name": bson.M{
						"bsonType":    "string",
						"description": "Name must be a string",
					},
					"member_id": bson.M{
						"bsonType":    []string{"int", "long"},
						"description": "Member ID must be an integer",
					},
				},
			},
		},
	}
}
