package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) domain.BaseRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

func (r *BaseMongoRepository[T]) coll() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create 创建新实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	// 设置创建时间（如果实体有相关字段）
	r.setTimestamps(entity, true)

	if r.getEntityID(entity).IsZero() {
		r.setEntityID(entity, primitive.NewObjectID())
	}

	resultID, err := r.coll().InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	var entity T
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			return nil, fmt.Errorf("%w with id: %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return &entity, nil
}

// UpdateByID 根据ID更新指定字段
func (r *BaseMongoRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	if id.IsZero() {
		return false, errors.New("id cannot be empty")
	}

	// 添加更新时间
	if setUpdate, ok := update["$set"].(bson.M); ok {
		setUpdate["updated_at"] = time.Now().UTC()
	} else if update["$set"] == nil {
		update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	}

	result, err := r.coll().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update entity: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, fmt.Errorf("%w with id: %s", domain.ErrNotFound, id.Hex())
	}

	return result.ModifiedCount > 0, nil
}

// Delete 删除实体
func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return errors.New("id cannot be empty")
	}

	deletedCount, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	if deletedCount == 0 {
		return fmt.Errorf("%w with id: %s", domain.ErrNotFound, id.Hex())
	}

	return nil
}

// DeleteMany 批量删除
func (r *BaseMongoRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	deletedCount, err := r.coll().DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}

	return deletedCount, nil
}

// GetByFilter 根据过滤条件获取实体
func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := r.coll().Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	return entities, nil
}

// GetOneByFilter 根据过滤条件获取单个实体
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	var entity T
	err := r.coll().FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			return nil, nil // 没找到返回nil，不是错误
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}

	return &entity, nil
}

// Count 统计数量
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	count, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return count, nil
}

// GetPaginated 分页查询
func (r *BaseMongoRepository[T]) GetPaginated(ctx context.Context, filter interface{}, skip, limit int64, sort bson.D) ([]*T, error) {
	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if len(sort) > 0 {
		// 追加_id保证翻页稳定
		opts.SetSort(append(sort, bson.E{Key: "_id", Value: 1}))
	}
	return r.GetByFilter(ctx, filter, opts)
}

// Exists 检查实体是否存在
func (r *BaseMongoRepository[T]) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if id.IsZero() {
		return false, errors.New("id cannot be empty")
	}

	return r.ExistsByFilter(ctx, bson.M{"_id": id})
}

// ExistsByFilter 根据过滤条件检查实体是否存在
func (r *BaseMongoRepository[T]) ExistsByFilter(ctx context.Context, filter interface{}) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// 辅助方法：设置时间戳
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	now := time.Now().UTC()
	timeType := reflect.TypeOf(now)

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() || field.Type() != timeType {
			continue
		}

		fieldName, _, _ := strings.Cut(typ.Field(i).Tag.Get("bson"), ",")

		// 设置创建时间
		if isCreate && fieldName == "created_at" && field.Interface().(time.Time).IsZero() {
			field.Set(reflect.ValueOf(now))
		}

		// 设置更新时间
		if fieldName == "updated_at" {
			field.Set(reflect.ValueOf(now))
		}
	}
}

// 获取实体ID
func (r *BaseMongoRepository[T]) getEntityID(entity *T) primitive.ObjectID {
	if field, ok := idField(entity); ok {
		return field.Interface().(primitive.ObjectID)
	}
	return primitive.NilObjectID
}

// 设置实体ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if field, ok := idField(entity); ok && field.CanSet() {
		field.Set(reflect.ValueOf(id))
	}
}

// 辅助函数：按bson标签定位ObjectID主键字段
func idField[T any](entity *T) (reflect.Value, bool) {
	if entity == nil {
		return reflect.Value{}, false
	}
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()
	oidType := reflect.TypeOf(primitive.ObjectID{})

	for i := 0; i < val.NumField(); i++ {
		fieldName, _, _ := strings.Cut(typ.Field(i).Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = typ.Field(i).Name
		}
		if (fieldName == "_id" || fieldName == "ID") && val.Field(i).Type() == oidType {
			return val.Field(i), true
		}
	}
	return reflect.Value{}, false
}
