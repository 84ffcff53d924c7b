package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type surgicalPackageItem struct {
	MedicationsIncluded []string `dynamodbav:"medications_included,omitempty"`
	PostoperativeCare   []string `dynamodbav:"postoperative_care,omitempty"`
	HospitalStayNights  int      `dynamodbav:"hospital_stay_nights"`
	SpecialEquipment    []string `dynamodbav:"special_equipment,omitempty"`
	DietaryPlan         bool     `dynamodbav:"dietary_plan"`
	AdditionalServices  []string `dynamodbav:"additional_services,omitempty"`
}

type quoteItem struct {
	ID string `dynamodbav:"id"`

	PatientID    string `dynamodbav:"patient_id,omitempty"`
	PatientAge   *int   `dynamodbav:"patient_age,omitempty"`
	PatientPhone string `dynamodbav:"patient_phone,omitempty"`
	PatientEmail string `dynamodbav:"patient_email,omitempty"`

	ProcedureName        string `dynamodbav:"procedure_name"`
	ProcedureCode        string `dynamodbav:"procedure_code,omitempty"`
	ProcedureDescription string `dynamodbav:"procedure_description,omitempty"`

	SurgeonName      string `dynamodbav:"surgeon_name,omitempty"`
	SurgeonSpecialty string `dynamodbav:"surgeon_specialty,omitempty"`

	SurgeryDurationHours int      `dynamodbav:"surgery_duration_hours"`
	AnesthesiaType       string   `dynamodbav:"anesthesia_type,omitempty"`
	AdditionalEquipment  []string `dynamodbav:"additional_equipment,omitempty"`
	AdditionalMaterials  []string `dynamodbav:"additional_materials,omitempty"`
	IsAmbulatory         bool     `dynamodbav:"is_ambulatory"`
	HospitalNights       int      `dynamodbav:"hospital_nights"`

	FacilityFee    string `dynamodbav:"facility_fee"`
	EquipmentCosts string `dynamodbav:"equipment_costs"`
	AnesthesiaFee  string `dynamodbav:"anesthesia_fee"`
	OtherCosts     string `dynamodbav:"other_costs"`
	TotalCost      string `dynamodbav:"total_cost"`

	SurgicalPackage *surgicalPackageItem `dynamodbav:"surgical_package,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	CreatedBy string `dynamodbav:"created_by"`
	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the whole table and orders in memory by created_at; the
// table stays small enough for a clinic-sized quote history.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List returns every stored quote, newest first.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	var pkg *surgicalPackageItem
	if q.SurgicalPackage != nil {
		pkg = &surgicalPackageItem{
			MedicationsIncluded: q.SurgicalPackage.MedicationsIncluded,
			PostoperativeCare:   q.SurgicalPackage.PostoperativeCare,
			HospitalStayNights:  q.SurgicalPackage.HospitalStayNights,
			SpecialEquipment:    q.SurgicalPackage.SpecialEquipment,
			DietaryPlan:         q.SurgicalPackage.DietaryPlan,
			AdditionalServices:  q.SurgicalPackage.AdditionalServices,
		}
	}

	return quoteItem{
		ID:                   q.ID,
		PatientID:            q.PatientID,
		PatientAge:           q.PatientAge,
		PatientPhone:         q.PatientPhone,
		PatientEmail:         q.PatientEmail,
		ProcedureName:        q.ProcedureName,
		ProcedureCode:        q.ProcedureCode,
		ProcedureDescription: q.ProcedureDescription,
		SurgeonName:          q.SurgeonName,
		SurgeonSpecialty:     q.SurgeonSpecialty,
		SurgeryDurationHours: q.SurgeryDurationHours,
		AnesthesiaType:       q.AnesthesiaType,
		AdditionalEquipment:  q.AdditionalEquipment,
		AdditionalMaterials:  q.AdditionalMaterials,
		IsAmbulatory:         q.IsAmbulatory,
		HospitalNights:       q.HospitalNights,
		FacilityFee:          floatToString(q.FacilityFee),
		EquipmentCosts:       floatToString(q.EquipmentCosts),
		AnesthesiaFee:        floatToString(q.AnesthesiaFee),
		OtherCosts:           floatToString(q.OtherCosts),
		TotalCost:            floatToString(q.TotalCost),
		SurgicalPackage:      pkg,
		CreatedAt:            q.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:            q.CreatedBy,
		Status:               string(q.Status),
		Notes:                q.Notes,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	facilityFee, _ := strconv.ParseFloat(it.FacilityFee, 64)
	equipmentCosts, _ := strconv.ParseFloat(it.EquipmentCosts, 64)
	anesthesiaFee, _ := strconv.ParseFloat(it.AnesthesiaFee, 64)
	otherCosts, _ := strconv.ParseFloat(it.OtherCosts, 64)
	totalCost, _ := strconv.ParseFloat(it.TotalCost, 64)

	var pkg *entities.SurgicalPackage
	if it.SurgicalPackage != nil {
		pkg = &entities.SurgicalPackage{
			MedicationsIncluded: it.SurgicalPackage.MedicationsIncluded,
			PostoperativeCare:   it.SurgicalPackage.PostoperativeCare,
			HospitalStayNights:  it.SurgicalPackage.HospitalStayNights,
			SpecialEquipment:    it.SurgicalPackage.SpecialEquipment,
			DietaryPlan:         it.SurgicalPackage.DietaryPlan,
			AdditionalServices:  it.SurgicalPackage.AdditionalServices,
		}
	}

	return entities.Quote{
		ID:                   it.ID,
		PatientID:            it.PatientID,
		PatientAge:           it.PatientAge,
		PatientPhone:         it.PatientPhone,
		PatientEmail:         it.PatientEmail,
		ProcedureName:        it.ProcedureName,
		ProcedureCode:        it.ProcedureCode,
		ProcedureDescription: it.ProcedureDescription,
		SurgeonName:          it.SurgeonName,
		SurgeonSpecialty:     it.SurgeonSpecialty,
		SurgeryDurationHours: it.SurgeryDurationHours,
		AnesthesiaType:       it.AnesthesiaType,
		AdditionalEquipment:  it.AdditionalEquipment,
		AdditionalMaterials:  it.AdditionalMaterials,
		IsAmbulatory:         it.IsAmbulatory,
		HospitalNights:       it.HospitalNights,
		FacilityFee:          facilityFee,
		EquipmentCosts:       equipmentCosts,
		AnesthesiaFee:        anesthesiaFee,
		OtherCosts:           otherCosts,
		TotalCost:            totalCost,
		SurgicalPackage:      pkg,
		CreatedAt:            createdAt,
		CreatedBy:            it.CreatedBy,
		Status:               entities.QuoteStatus(it.Status),
		Notes:                it.Notes,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
