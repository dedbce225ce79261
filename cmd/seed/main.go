package main

import (
	"context"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the record store with demo providers, medications and a demo patient
// account. Safe to run repeatedly: existing documents are left alone.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	providers := []models.Provider{
		{ID: uuid.NewString(), Name: "Dr. Smith", Specialty: "General Practice", IsActive: true},
		{ID: uuid.NewString(), Name: "Dr. Johnson", Specialty: "Cardiology", IsActive: true},
		{ID: uuid.NewString(), Name: "Dr. Williams", Specialty: "Dermatology", IsActive: true},
	}
	providerCollection := db.Collection(constvars.MongoCollectionProviders)
	for _, provider := range providers {
		count, err := providerCollection.CountDocuments(ctx, bson.M{"name": provider.Name})
		if err != nil {
			logrus.Fatalf("Failed to check provider %s: %v", provider.Name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := providerCollection.InsertOne(ctx, provider); err != nil {
			logrus.Fatalf("Failed to seed provider %s: %v", provider.Name, err)
		}
		logrus.Infof("Seeded provider %s", provider.Name)
	}

	medications := []models.Medication{
		{ID: uuid.NewString(), Name: "Amoxicillin", Dosages: []string{"250mg", "500mg"}, IsActive: true},
		{ID: uuid.NewString(), Name: "Lisinopril", Dosages: []string{"10mg", "20mg"}, IsActive: true},
		{ID: uuid.NewString(), Name: "Ibuprofen", Dosages: []string{"200mg", "400mg", "600mg"}, IsActive: true},
	}
	medicationCollection := db.Collection(constvars.MongoCollectionMedications)
	for _, medication := range medications {
		count, err := medicationCollection.CountDocuments(ctx, bson.M{"name": medication.Name})
		if err != nil {
			logrus.Fatalf("Failed to check medication %s: %v", medication.Name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := medicationCollection.InsertOne(ctx, medication); err != nil {
			logrus.Fatalf("Failed to seed medication %s: %v", medication.Name, err)
		}
		logrus.Infof("Seeded medication %s", medication.Name)
	}

	patientCollection := db.Collection(constvars.MongoCollectionPatients)
	demoEmail := "demo@carebook.local"
	count, err := patientCollection.CountDocuments(ctx, bson.M{"email": demoEmail})
	if err != nil {
		logrus.Fatalf("Failed to check demo patient: %v", err)
	}
	if count == 0 {
		hashedPassword, err := utils.HashPassword("demo-password")
		if err != nil {
			logrus.Fatalf("Failed to hash demo password: %v", err)
		}
		demoPatient := models.Patient{
			ID:            uuid.NewString(),
			Name:          "Demo Patient",
			Email:         demoEmail,
			Password:      hashedPassword,
			Appointments:  []models.Appointment{},
			Prescriptions: []models.Prescription{},
		}
		if _, err := patientCollection.InsertOne(ctx, demoPatient); err != nil {
			logrus.Fatalf("Failed to seed demo patient: %v", err)
		}
		logrus.Infof("Seeded demo patient %s", demoEmail)
	}

	logrus.Info("Seeding complete")
}
