package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Manajemen-HR/config"
	"Sistem-Manajemen-HR/models"
)

type LeaveRepository interface {
	CreateLeave(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error)
	FindLeaveByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	FindLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error)
	GetAllLeavesWithDetails(ctx context.Context) ([]models.LeaveWithDetails, error)
	GetLeaveWithDetails(ctx context.Context, id primitive.ObjectID) (*models.LeaveWithDetails, error)
	UpdateLeaveStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	FindUnseenDecidedLeaves(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error)
	MarkLeavesSeen(ctx context.Context, employeeID primitive.ObjectID) (*mongo.UpdateResult, error)
	DeleteLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteLeavesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error)
}

type leaveRepository struct {
	collection *mongo.Collection
}

func NewLeaveRepository() LeaveRepository {
	return &leaveRepository{
		collection: config.GetCollection(config.LeaveCollection),
	}
}

func (r *leaveRepository) CreateLeave(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	leave.ID = primitive.NewObjectID()
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRepository) FindLeaveByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	var leave models.Leave
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan pengajuan berdasarkan ID: %w", err)
	}
	return &leave, nil
}

func (r *leaveRepository) FindLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error) {
	filter := bson.M{"employee_id": employeeID}
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari pengajuan cuti berdasarkan employee: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.Leave
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("gagal mendecode pengajuan cuti: %w", err)
	}
	if leaves == nil {
		leaves = []models.Leave{}
	}
	return leaves, nil
}

func (r *leaveRepository) detailsPipeline(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.EmployeeCollection},
				{Key: "localField", Value: "employee_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "employee_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$employee_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "employee_info.user_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "user_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$user_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.DepartmentCollection},
				{Key: "localField", Value: "employee_info.department_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "department_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$department_info"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			},
		}},
		bson.D{{
			Key: "$project",
			Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "employee_id", Value: 1},
				{Key: "leave_type", Value: 1},
				{Key: "from_date", Value: 1},
				{Key: "to_date", Value: 1},
				{Key: "description", Value: 1},
				{Key: "status", Value: 1},
				{Key: "is_seen_by_employee", Value: 1},
				{Key: "applied_at", Value: 1},
				{Key: "employee_code", Value: "$employee_info.employee_code"},
				{Key: "user_name", Value: "$user_info.name"},
				{Key: "user_email", Value: "$user_info.email"},
				{Key: "user_avatar", Value: "$user_info.avatar"},
				{Key: "department_name", Value: "$department_info.name"},
			},
		}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: 1}}}},
	)

	return pipeline
}

func (r *leaveRepository) GetAllLeavesWithDetails(ctx context.Context) ([]models.LeaveWithDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, r.detailsPipeline(nil))
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi pengajuan dengan detail user: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.LeaveWithDetails
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("gagal mendecode pengajuan dengan detail user: %w", err)
	}
	if leaves == nil {
		leaves = []models.LeaveWithDetails{}
	}
	return leaves, nil
}

func (r *leaveRepository) GetLeaveWithDetails(ctx context.Context, id primitive.ObjectID) (*models.LeaveWithDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, r.detailsPipeline(bson.D{{Key: "_id", Value: id}}))
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi pengajuan dengan detail user: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.LeaveWithDetails
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("gagal mendecode pengajuan dengan detail user: %w", err)
	}
	if len(leaves) == 0 {
		return nil, nil
	}
	return &leaves[0], nil
}

// UpdateLeaveStatus mengeset status final dan mereset flag seen
// supaya keputusan muncul sebagai notifikasi yang belum dibaca.
func (r *leaveRepository) UpdateLeaveStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":              status,
			"is_seen_by_employee": false,
			"updated_at":          time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status pengajuan: %w", err)
	}
	return result, nil
}

func (r *leaveRepository) FindUnseenDecidedLeaves(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error) {
	filter := bson.M{
		"employee_id":         employeeID,
		"status":              bson.M{"$in": []string{models.LeaveStatusApproved, models.LeaveStatusRejected}},
		"is_seen_by_employee": false,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(20)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari notifikasi cuti: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.Leave
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("gagal mendecode notifikasi cuti: %w", err)
	}
	if leaves == nil {
		leaves = []models.Leave{}
	}
	return leaves, nil
}

func (r *leaveRepository) MarkLeavesSeen(ctx context.Context, employeeID primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{
		"employee_id":         employeeID,
		"status":              bson.M{"$in": []string{models.LeaveStatusApproved, models.LeaveStatusRejected}},
		"is_seen_by_employee": false,
	}
	update := bson.M{"$set": bson.M{"is_seen_by_employee": true}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal menandai notifikasi sudah dibaca: %w", err)
	}
	return result, nil
}

func (r *leaveRepository) DeleteLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus pengajuan cuti berdasarkan employee: %w", err)
	}
	return result, nil
}

func (r *leaveRepository) DeleteLeavesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"employee_id": bson.M{"$in": employeeIDs}})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus banyak pengajuan cuti: %w", err)
	}
	return result, nil
}
