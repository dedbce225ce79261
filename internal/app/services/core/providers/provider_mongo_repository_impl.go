package providers

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) contracts.ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (r *ProviderMongoRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, nil
}

func (r *ProviderMongoRepository) CreateProvider(ctx context.Context, provider *models.Provider) error {
	_, err := r.Collection.InsertOne(ctx, provider)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
