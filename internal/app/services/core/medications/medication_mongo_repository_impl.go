package medications

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	return &MedicationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
	}
}

func (r *MedicationMongoRepository) FindAll(ctx context.Context) ([]models.Medication, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (r *MedicationMongoRepository) CreateMedication(ctx context.Context, medication *models.Medication) error {
	_, err := r.Collection.InsertOne(ctx, medication)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
