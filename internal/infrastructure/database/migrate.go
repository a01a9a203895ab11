package database

import (
	"fmt"

	"smarthome-http-service/config"

	"gorm.io/gorm"
)

// Migrate 按迁移模式同步表结构:
//   - "auto": 只添加新列和新表
//   - "alter": 额外删除模型中已不存在的列
//   - "drop": 删除并重建表，所有数据将丢失
func Migrate(db *gorm.DB, mode string, models ...interface{}) error {
	switch mode {
	case "drop":
		config.Warning("在drop模式下运行，将删除并重建所有表")
		for _, m := range models {
			if err := db.Migrator().DropTable(m); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}
		return autoMigrate(db, models...)
	case "alter":
		config.Info("在alter模式下运行，将修改表结构以匹配模型")
		if err := autoMigrate(db, models...); err != nil {
			return err
		}
		for _, m := range models {
			if err := dropStaleColumns(db, m); err != nil {
				return err
			}
		}
		return nil
	default:
		return autoMigrate(db, models...)
	}
}

func autoMigrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	config.Info("数据库迁移完成")
	return nil
}

// dropStaleColumns 删除表中存在但模型里已移除的列
func dropStaleColumns(db *gorm.DB, model interface{}) error {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}

	wanted := make(map[string]bool, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		wanted[name] = true
	}

	columns, err := db.Migrator().ColumnTypes(model)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", stmt.Schema.Table, err)
	}
	for _, col := range columns {
		if wanted[col.Name()] {
			continue
		}
		config.Info("删除 %s 表中的多余列: %s", stmt.Schema.Table, col.Name())
		if err := db.Migrator().DropColumn(model, col.Name()); err != nil {
			return fmt.Errorf("drop column %s: %w", col.Name(), err)
		}
	}
	return nil
}
