package repository

import (
	"time"

	"gorm.io/gorm"

	"traffic-info/internal/model"
)

// TrafficRepository 流量记录仓库接口
// 流量表是只追加的，Create是唯一的写入口
type TrafficRepository interface {
	Create(record *model.TrafficRecord) error
	StatsSince(since time.Time) (*model.TrafficStats, error)
	TopDomains(since time.Time, limit int) ([]model.DomainTraffic, error)
	CountByProtocol(since time.Time) ([]model.ProtocolCount, error)
	FindSince(since time.Time) ([]*model.TrafficRecord, error)
}

// GormTrafficRepository 基于GORM的流量记录仓库实现
type GormTrafficRepository struct {
	db *gorm.DB
}

// NewTrafficRepository 创建流量记录仓库
func NewTrafficRepository(db *gorm.DB) TrafficRepository {
	return &GormTrafficRepository{db: db}
}

// Create 插入一条流量记录
func (r *GormTrafficRepository) Create(record *model.TrafficRecord) error {
	return r.db.Create(record).Error
}

// StatsSince 统计since之后的上传、下载总量和记录数
func (r *GormTrafficRepository) StatsSince(since time.Time) (*model.TrafficStats, error) {
	var stats model.TrafficStats
	err := r.db.Model(&model.TrafficRecord{}).
		Where("timestamp >= ?", since).
		Select("COALESCE(SUM(upload_bytes), 0) AS total_upload, COALESCE(SUM(download_bytes), 0) AS total_download, COUNT(*) AS record_count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopDomains 按上传+下载总字节数降序返回前limit个域名
func (r *GormTrafficRepository) TopDomains(since time.Time, limit int) ([]model.DomainTraffic, error) {
	var domains []model.DomainTraffic
	err := r.db.Model(&model.TrafficRecord{}).
		Where("timestamp >= ?", since).
		Select("domain, SUM(upload_bytes + download_bytes) AS total_bytes").
		Group("domain").
		Order("total_bytes DESC").
		Limit(limit).
		Scan(&domains).Error
	if err != nil {
		return nil, err
	}
	return domains, nil
}

// CountByProtocol 按协议统计记录数
func (r *GormTrafficRepository) CountByProtocol(since time.Time) ([]model.ProtocolCount, error) {
	var counts []model.ProtocolCount
	err := r.db.Model(&model.TrafficRecord{}).
		Where("timestamp >= ?", since).
		Select("protocol, COUNT(*) AS count").
		Group("protocol").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// FindSince 返回since之后的所有记录，按时间升序
func (r *GormTrafficRepository) FindSince(since time.Time) ([]*model.TrafficRecord, error) {
	var records []*model.TrafficRecord
	err := r.db.Where("timestamp >= ?", since).
		Order("timestamp ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
