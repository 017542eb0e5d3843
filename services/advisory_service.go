package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/khavyaindhu/farmersupportapp/models"
)

// diseaseResults is the simulated diagnosis table. Detection picks one of
// these at random after a fixed delay; there is no model behind it.
var diseaseResults = []models.DiseaseResult{
	{
		Disease:       "Leaf Blight",
		Crop:          "Wheat / Rice",
		Severity:      "Moderate",
		SeverityColor: "#FF9800",
		Description:   "Leaf blight is caused by fungal pathogens. It appears as brown or yellow patches spreading across the leaf surface, eventually drying out the affected areas.",
		Symptoms: []string{
			"Brown or yellow spots on leaves",
			"Wilting of leaf tips",
			"Premature leaf drop",
		},
		Treatment: []string{
			"Apply Mancozeb 75% WP @ 2g/litre of water",
			"Remove and destroy infected plant parts",
			"Ensure proper field drainage",
			"Avoid overhead irrigation",
		},
		Prevention: "Use disease-resistant varieties. Maintain crop rotation.",
		Helpline:   "1800-180-1551",
	},
	{
		Disease:       "Powdery Mildew",
		Crop:          "Wheat / Vegetables",
		Severity:      "Mild",
		SeverityColor: "#4CAF50",
		Description:   "Powdery mildew is a fungal disease that appears as white powdery spots on leaves and stems. It thrives in warm, dry climates with cool nights.",
		Symptoms: []string{
			"White powdery coating on leaves",
			"Yellowing of leaves",
			"Stunted plant growth",
		},
		Treatment: []string{
			"Spray Sulfur 80% WP @ 3g/litre of water",
			"Apply Neem oil solution (5 ml/litre)",
			"Remove heavily infected leaves",
			"Improve air circulation around plants",
		},
		Prevention: "Avoid overcrowding plants. Water at the base, not on leaves.",
		Helpline:   "1800-180-1551",
	},
	{
		Disease:       "Root Rot",
		Crop:          "Cotton / Soybean",
		Severity:      "Severe",
		SeverityColor: "#F44336",
		Description:   "Root rot is caused by soil-borne fungi and leads to decay of the root system. It is most common in waterlogged or poorly drained soils.",
		Symptoms: []string{
			"Wilting despite adequate water",
			"Dark brown or black roots",
			"Yellowing of lower leaves",
		},
		Treatment: []string{
			"Apply Trichoderma viride @ 4g/kg seed treatment",
			"Drench soil with Copper oxychloride 3g/litre",
			"Improve soil drainage immediately",
			"Reduce irrigation frequency",
		},
		Prevention: "Avoid waterlogging. Use raised bed cultivation.",
		Helpline:   "1800-180-1551",
	},
	{
		Disease:       "Bacterial Leaf Spot",
		Crop:          "Tomato / Pepper",
		Severity:      "Moderate",
		SeverityColor: "#FF9800",
		Description:   "Bacterial leaf spot causes small, water-soaked spots that later turn brown with yellow halos. It spreads rapidly in wet and humid conditions.",
		Symptoms: []string{
			"Dark water-soaked spots on leaves",
			"Yellow halo around spots",
			"Premature fruit drop",
		},
		Treatment: []string{
			"Spray Copper-based bactericide @ 2g/litre",
			"Apply Streptomycin Sulphate 90% + Tetracycline 10% @ 0.5g/litre",
			"Remove and burn infected plant debris",
		},
		Prevention: "Use certified disease-free seeds. Rotate crops annually.",
		Helpline:   "1800-180-1551",
	},
	{
		Disease:       "No Disease Detected",
		Crop:          "General",
		Severity:      "Healthy",
		SeverityColor: "#2E7D32",
		Description:   "Your crop appears to be healthy! No visible signs of disease were detected in the uploaded image. Continue your current farming practices.",
		Symptoms:      []string{"No symptoms detected"},
		Treatment:     []string{"No treatment required at this time"},
		Prevention:    "Continue regular monitoring. Maintain balanced fertilization and proper irrigation.",
		Helpline:      "1800-180-1551",
	},
}

// AdvisoryService simulates the crop-disease analysis flow: a fixed delay
// followed by a uniform-random pick from the canned table.
type AdvisoryService struct {
	delay time.Duration
	mu    sync.Mutex
	rnd   *rand.Rand
}

// NewAdvisoryService creates an AdvisoryService with the given analysis
// delay.
func NewAdvisoryService(delay time.Duration) *AdvisoryService {
	return &AdvisoryService{
		delay: delay,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Analyze waits out the simulated processing time and returns a random
// diagnosis. The wait is cut short when ctx is cancelled.
func (s *AdvisoryService) Analyze(ctx context.Context) (models.DiseaseResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.DiseaseResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	result := diseaseResults[s.rnd.Intn(len(diseaseResults))]
	s.mu.Unlock()
	return result, nil
}
