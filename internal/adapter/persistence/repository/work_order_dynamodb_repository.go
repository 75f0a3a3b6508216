package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrderLineIndex         = "line_id-index"
	workOrderNumberIndex       = "work_order_number-index"
)

type workOrderItem struct {
	ID              string  `dynamodbav:"id"`
	Number          string  `dynamodbav:"work_order_number"`
	Customer        string  `dynamodbav:"customer,omitempty"`
	Assembly        string  `dynamodbav:"assembly,omitempty"`
	Revision        string  `dynamodbav:"revision,omitempty"`
	Quantity        int     `dynamodbav:"quantity"`
	Status          string  `dynamodbav:"status"`
	ShipDate        string  `dynamodbav:"ship_date,omitempty"`
	KitDate         string  `dynamodbav:"kit_date,omitempty"`
	SetupHours      float64 `dynamodbav:"setup_hours"`
	ProductionHours float64 `dynamodbav:"production_hours"`
	ProductionDays  float64 `dynamodbav:"production_days"`
	LineID          string  `dynamodbav:"line_id,omitempty"`
	ScheduledStart  string  `dynamodbav:"scheduled_start,omitempty"`
	ScheduledEnd    string  `dynamodbav:"scheduled_end,omitempty"`
	LinePosition    *int    `dynamodbav:"line_position,omitempty"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI line_id-index, PK: line_id (string)
//   - GSI work_order_number-index, PK: work_order_number (string)
//
// line_id is removed, never blanked, when a schedule is cleared: DynamoDB
// rejects empty strings as index keys.
type WorkOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) ListActive(ctx context.Context) ([]entities.WorkOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("NOT (#status IN (:completed, :cancelled))"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCompleted)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCancelled)},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.WorkOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		orders, err := unmarshalWorkOrders(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, orders...)
	}
	sortWorkOrders(out)
	return out, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it)
}

// GetByNumber looks a work order up by its business number. Numbers are
// unique by convention only, so the lowest id wins when several match.
func (r *WorkOrderDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.WorkOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrderNumberIndex),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "work_order_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})

	var found []entities.WorkOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		orders, err := unmarshalWorkOrders(page.Items)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		found = append(found, orders...)
	}
	if len(found) == 0 {
		return entities.WorkOrder{}, nil
	}
	return slices.MinFunc(found, func(a, b entities.WorkOrder) int {
		return strings.Compare(a.ID, b.ID)
	}), nil
}

// Save writes the whole work order, creating it when the id is new.
func (r *WorkOrderDynamoRepository) Save(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := wo.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	wo.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("failed to save work order %s: %w", wo.Number, err)
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) ListByLineID(ctx context.Context, lineID string) ([]entities.WorkOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrderLineIndex),
		KeyConditionExpression: aws.String("#line_id = :line_id"),
		ExpressionAttributeNames: map[string]string{
			"#line_id": "line_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":line_id": &types.AttributeValueMemberS{Value: lineID},
		},
	})

	var out []entities.WorkOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		orders, err := unmarshalWorkOrders(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, orders...)
	}
	sortWorkOrders(out)
	return out, nil
}

// UpdateSchedule writes or removes the assignment of one work order. A
// missing work order yields a zero WorkOrder and no error.
func (r *WorkOrderDynamoRepository) UpdateSchedule(ctx context.Context, id string, update entities.ScheduleUpdate) (entities.WorkOrder, error) {
	if err := update.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	names := map[string]string{
		"#id":              "id",
		"#line_id":         "line_id",
		"#scheduled_start": "scheduled_start",
		"#scheduled_end":   "scheduled_end",
		"#line_position":   "line_position",
		"#updated_at":      "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	var expr string
	if update.IsClear() {
		expr = "SET #updated_at = :updated_at REMOVE #line_id, #scheduled_start, #scheduled_end, #line_position"
	} else {
		values[":line_id"] = &types.AttributeValueMemberS{Value: *update.LineID}
		values[":scheduled_start"] = &types.AttributeValueMemberS{Value: formatTime(update.Start)}
		values[":scheduled_end"] = &types.AttributeValueMemberS{Value: formatTime(update.End)}
		sets := []string{
			"#line_id = :line_id",
			"#scheduled_start = :scheduled_start",
			"#scheduled_end = :scheduled_end",
			"#updated_at = :updated_at",
		}
		if update.LinePosition != nil {
			values[":line_position"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*update.LinePosition)}
			sets = append(sets, "#line_position = :line_position")
			expr = "SET " + strings.Join(sets, ", ")
		} else {
			expr = "SET " + strings.Join(sets, ", ") + " REMOVE #line_position"
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, fmt.Errorf("failed to update schedule of %s: %w", id, err)
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it)
}

func (r *WorkOrderDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	return err
}

func unmarshalWorkOrders(items []map[string]types.AttributeValue) ([]entities.WorkOrder, error) {
	var its []workOrderItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(its))
	for _, it := range its {
		wo, err := fromWorkOrderItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, wo)
	}
	return out, nil
}

// sortWorkOrders gives scans a stable order: scheduled work by start, then
// the rest by work-order number.
func sortWorkOrders(orders []entities.WorkOrder) {
	slices.SortStableFunc(orders, func(a, b entities.WorkOrder) int {
		switch {
		case a.ScheduledStart != nil && b.ScheduledStart != nil:
			if c := a.ScheduledStart.Compare(*b.ScheduledStart); c != 0 {
				return c
			}
		case a.ScheduledStart != nil:
			return -1
		case b.ScheduledStart != nil:
			return 1
		}
		if c := strings.Compare(a.Number, b.Number); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:              w.ID,
		Number:          w.Number,
		Customer:        w.Customer,
		Assembly:        w.Assembly,
		Revision:        w.Revision,
		Quantity:        w.Quantity,
		Status:          string(w.Status),
		ShipDate:        formatDate(w.ShipDate),
		KitDate:         formatDate(w.KitDate),
		SetupHours:      w.SetupHours,
		ProductionHours: w.ProductionHours,
		ProductionDays:  w.ProductionDays,
		LineID:          w.AssignedLineID(),
		ScheduledStart:  formatTime(w.ScheduledStart),
		ScheduledEnd:    formatTime(w.ScheduledEnd),
		LinePosition:    w.LinePosition,
		UpdatedAt:       w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromWorkOrderItem rejects malformed timestamps: reading them as nil would
// silently unschedule the work order.
func fromWorkOrderItem(it workOrderItem) (entities.WorkOrder, error) {
	wo := entities.WorkOrder{
		ID:              it.ID,
		Number:          it.Number,
		Customer:        it.Customer,
		Assembly:        it.Assembly,
		Revision:        it.Revision,
		Quantity:        it.Quantity,
		Status:          entities.WorkOrderStatus(it.Status),
		SetupHours:      it.SetupHours,
		ProductionHours: it.ProductionHours,
		ProductionDays:  it.ProductionDays,
		LinePosition:    it.LinePosition,
	}
	if it.LineID != "" {
		wo.LineID = aws.String(it.LineID)
	}
	if it.UpdatedAt != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
		if err != nil {
			return entities.WorkOrder{}, fmt.Errorf("work order %s: updated_at: %w", it.ID, err)
		}
		wo.UpdatedAt = updatedAt
	}

	var err error
	if wo.ShipDate, err = parseDate(it.ShipDate); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("work order %s: ship_date: %w", it.ID, err)
	}
	if wo.KitDate, err = parseDate(it.KitDate); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("work order %s: kit_date: %w", it.ID, err)
	}
	if wo.ScheduledStart, err = parseTime(it.ScheduledStart); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("work order %s: scheduled_start: %w", it.ID, err)
	}
	if wo.ScheduledEnd, err = parseTime(it.ScheduledEnd); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("work order %s: scheduled_end: %w", it.ID, err)
	}
	return wo, nil
}
