// Package transport provides DTOs for the analysis domain.
package transport

// AnalyzeRequest is the caller's description of the property and the
// improvements to evaluate. When coordinates are omitted the property
// reference is geocoded as a postcode.
type AnalyzeRequest struct {
	PropertyReference string   `json:"propertyReference" validate:"required,min=2,max=64"`
	Budget            float64  `json:"budget" validate:"gte=0"`
	Improvements      []string `json:"improvements" validate:"dive,min=1"`
	Latitude          *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Location is the resolved property location echoed in the report.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RetrofitExample is one representative planning application shown as
// evidence for an improvement's feasibility.
type RetrofitExample struct {
	PlanningReference string   `json:"planningReference"`
	Proposal          string   `json:"proposal"`
	Decision          string   `json:"decision"`
	DecisionTimeDays  *float64 `json:"decisionTimeDays,omitempty"`
	SubmissionDate    string   `json:"submissionDate"`
	DecisionDate      *string  `json:"decisionDate,omitempty"`
}

// Feasibility ratings.
const (
	RatingHigh   = "HIGH"
	RatingMedium = "MEDIUM"
	RatingLow    = "LOW"
)

// QualifierConservationConstraint flags evidence of conservation-area or
// listed-building restrictions near the property. It does not change the
// rating tier but must be surfaced distinctly.
const QualifierConservationConstraint = "conservation_area_constraint"

// FeasibilityResult classifies local approval evidence for one improvement.
type FeasibilityResult struct {
	Rating           string            `json:"rating"` // HIGH, MEDIUM, LOW
	Qualifier        string            `json:"qualifier,omitempty"`
	ApprovedExamples int               `json:"approvedExamples"`
	AverageTimeDays  *float64          `json:"averageTimeDays,omitempty"` // absent when no decided matches
	Examples         []RetrofitExample `json:"examples"`
}

// ImprovementReport is the full evaluation of one requested improvement.
type ImprovementReport struct {
	ImprovementType     string            `json:"improvementType"`
	DisplayName         string            `json:"displayName"`
	EstimatedCost       float64           `json:"estimatedCost"`
	CostExplanation     string            `json:"costExplanation"`
	EstimatedROIPercent float64           `json:"estimatedRoiPercent"`
	GreenPremiumValue   float64           `json:"greenPremiumValue"`
	ValueExplanation    string            `json:"valueExplanation"`
	AnnualKwhSavings    float64           `json:"annualKwhSavings"`
	AnnualCO2SavingsKg  float64           `json:"annualCo2SavingsKg"`
	Feasibility         FeasibilityResult `json:"feasibility"`
}

// EnergyCompliance projects the property's EPC band against the 2030
// minimum-band policy target.
type EnergyCompliance struct {
	CurrentBand          string   `json:"currentBand"`
	CurrentBandEstimated bool     `json:"currentBandEstimated"`
	CurrentCO2EmissionsT *float64 `json:"currentCo2EmissionsTonnes,omitempty"`
	CurrentEnergyKwhM2   *float64 `json:"currentEnergyKwhM2,omitempty"`

	ProjectedBand          string   `json:"projectedBand"`
	ProjectedCO2EmissionsT *float64 `json:"projectedCo2EmissionsTonnes,omitempty"`

	GoalBand    string `json:"goalBand"`
	MeetsGoal   bool   `json:"meetsGoal"`
	BandsToGoal int    `json:"bandsToGoal"` // 0 when the goal is met
}

// AnalysisReport is the response root for one analysis request.
type AnalysisReport struct {
	PropertyReference string              `json:"propertyReference"`
	Location          Location            `json:"location"`
	Budget            float64             `json:"budget"`
	Improvements      []ImprovementReport `json:"improvements"`
	Compliance        EnergyCompliance    `json:"compliance"`

	TotalCost               float64 `json:"totalCost"`
	TotalROIPercent         float64 `json:"totalRoiPercent"`
	TotalValueIncrease      float64 `json:"totalValueIncrease"`
	TotalAnnualKwhSavings   float64 `json:"totalAnnualKwhSavings"`
	TotalAnnualCO2SavingsKg float64 `json:"totalAnnualCo2SavingsKg"`
	WithinBudget            bool    `json:"withinBudget"`

	Summary  string   `json:"summary"`
	Warnings []string `json:"warnings,omitempty"`
}
