package repository

import (
	"context"
	"slices"
	"strings"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductionLinesTableName = "production_lines"

type productionLineItem struct {
	ID                  string  `dynamodbav:"id"`
	Name                string  `dynamodbav:"name"`
	Status              string  `dynamodbav:"status"`
	ShiftsPerDay        int     `dynamodbav:"shifts_per_day"`
	HoursPerShift       float64 `dynamodbav:"hours_per_shift"`
	DaysPerWeek         int     `dynamodbav:"days_per_week"`
	ShiftStart          string  `dynamodbav:"shift_start"`
	ShiftEnd            string  `dynamodbav:"shift_end"`
	LunchBreakStart     string  `dynamodbav:"lunch_break_start,omitempty"`
	LunchBreakMinutes   int     `dynamodbav:"lunch_break_minutes"`
	BreakMinutes        int     `dynamodbav:"break_minutes"`
	TimeMultiplier      float64 `dynamodbav:"time_multiplier"`
	AutoScheduleEnabled bool    `dynamodbav:"auto_schedule_enabled"`
}

// ProductionLineDynamoRepository reads the line registry from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductionLineDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProductionLineRepository = (*ProductionLineDynamoRepository)(nil)

func NewProductionLineDynamoRepository(ddb DynamoDBAPI) *ProductionLineDynamoRepository {
	return &ProductionLineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTION_LINES_TABLE", defaultProductionLinesTableName),
	}
}

func (r *ProductionLineDynamoRepository) ListLines(ctx context.Context) ([]entities.ProductionLine, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.ProductionLine
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var its []productionLineItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			out = append(out, fromProductionLineItem(it))
		}
	}
	slices.SortStableFunc(out, func(a, b entities.ProductionLine) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *ProductionLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProductionLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ProductionLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductionLine{}, nil
	}
	var it productionLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductionLine{}, err
	}
	return fromProductionLineItem(it), nil
}

func fromProductionLineItem(it productionLineItem) entities.ProductionLine {
	status := entities.LineStatus(it.Status)
	if status == "" {
		status = entities.LineStatusActive
	}
	return entities.ProductionLine{
		ID:                  it.ID,
		Name:                it.Name,
		Status:              status,
		ShiftsPerDay:        it.ShiftsPerDay,
		HoursPerShift:       it.HoursPerShift,
		DaysPerWeek:         it.DaysPerWeek,
		ShiftStart:          it.ShiftStart,
		ShiftEnd:            it.ShiftEnd,
		LunchBreakStart:     it.LunchBreakStart,
		LunchBreakMinutes:   it.LunchBreakMinutes,
		BreakMinutes:        it.BreakMinutes,
		TimeMultiplier:      it.TimeMultiplier,
		AutoScheduleEnabled: it.AutoScheduleEnabled,
	}
}
