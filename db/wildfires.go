package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-sentinel/types"
)

const wildfiresCollection = "wildfires"

// WildfireStore reads historical fire records from the 'wildfires'
// collection, one document per fire.
type WildfireStore struct {
	client *firestore.Client
}

func NewWildfireStore(client *firestore.Client) *WildfireStore {
	return &WildfireStore{client: client}
}

// Load returns every fire recorded for the given year and state.
func (s *WildfireStore) Load(ctx context.Context, year int, state string) ([]types.FireRecord, error) {
	iter := s.client.Collection(wildfiresCollection).
		Where("fireYear", "==", year).
		Where("state", "==", state).
		Documents(ctx)
	defer iter.Stop()

	var records []types.FireRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading wildfires for %d/%s: %w", year, state, err)
		}

		var rec types.FireRecord
		if err := doc.DataTo(&rec); err != nil {
			log.Printf("Warning: skipping malformed wildfire doc %s: %v", doc.Ref.ID, err)
			continue
		}
		records = append(records, rec)
	}

	log.Printf("Loaded %d wildfires for %d/%s from Firestore", len(records), year, state)
	return records, nil
}

// Save writes fire records with BulkWriter, used when seeding the dataset.
func (s *WildfireStore) Save(ctx context.Context, records []types.FireRecord) error {
	if len(records) == 0 {
		log.Println("No wildfire records to save.")
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	coll := s.client.Collection(wildfiresCollection)

	for i := range records {
		rec := records[i]
		docID := fmt.Sprintf("%d-%s-%d", rec.FireYear, rec.State, i)
		if _, err := bw.Set(coll.Doc(docID), rec); err != nil {
			log.Printf("Error enqueueing wildfire %s for save: %v", docID, err)
		}
	}

	bw.Flush()
	log.Printf("Saved %d wildfire records to collection '%s'", len(records), wildfiresCollection)
	return nil
}
