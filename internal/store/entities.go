package store

import "github.com/rta-cma/camtrack/internal/query"

// Column lists in scan order. These must stay in lockstep with the SELECT
// statements in sql_queries.go and the scan helpers in each repository.
var (
	cameraColumns = []string{
		"id", "serial_no", "item_description", "model_no", "brand", "rta_tag",
		"camera_name", "ip_address", "mac_address", "firmware_version",
		"protocol", "sd_card", "sd_capacity", "status", "camera_status",
		"details", "comments", "is_asset", "location_id", "nvr_id",
	}

	locationColumns = []string{
		"id", "location_name", "location_type", "item_location", "old_location",
	}

	nvrColumns = []string{
		"id", "nvr_name", "ip_address", "channel_number", "switch_port",
	}

	actionColumns = []string{
		"id", "camera_id", "action_type", "old_value", "new_value", "notes",
		"action_date",
	}

	userColumns = []string{
		"id", "email", "username", "full_name", "hashed_password", "role",
		"is_active", "is_verified", "created_at", "updated_at", "last_login",
		"assigned_location_id",
	}
)

// Per-entity listing metadata consumed by the query composer: which columns
// a free-text search touches, and which public sort names are honoured.
// Sort allow-lists are the only place a client-supplied sort name is ever
// mapped to a column, so nothing outside these maps can reach an ORDER BY.
var (
	camerasEntity = query.Entity{
		Table:        "cameras",
		Columns:      cameraColumns,
		IDColumn:     "id",
		SearchFields: []string{"camera_name", "serial_no", "rta_tag", "ip_address", "model_no"},
		SortFields: map[string]string{
			"id":            "id",
			"camera_name":   "camera_name",
			"serial_no":     "serial_no",
			"status":        "status",
			"camera_status": "camera_status",
			"brand":         "brand",
			"ip_address":    "ip_address",
			"rta_tag":       "rta_tag",
		},
	}

	locationsEntity = query.Entity{
		Table:        "locations",
		Columns:      locationColumns,
		IDColumn:     "id",
		SearchFields: []string{"location_name", "location_type", "item_location"},
		SortFields: map[string]string{
			"id":            "id",
			"location_name": "location_name",
			"location_type": "location_type",
		},
	}

	nvrsEntity = query.Entity{
		Table:        "nvr_devices",
		Columns:      nvrColumns,
		IDColumn:     "id",
		SearchFields: []string{"nvr_name", "ip_address"},
		SortFields: map[string]string{
			"id":         "id",
			"nvr_name":   "nvr_name",
			"ip_address": "ip_address",
		},
	}

	actionsEntity = query.Entity{
		Table:        "camera_actions",
		Columns:      actionColumns,
		IDColumn:     "id",
		SearchFields: []string{"action_type", "notes"},
		SortFields: map[string]string{
			"id":          "id",
			"action_type": "action_type",
			"action_date": "action_date",
		},
		TimeField: "action_date",
	}

	usersEntity = query.Entity{
		Table:        "users",
		Columns:      userColumns,
		IDColumn:     "id",
		SearchFields: []string{"username", "email", "full_name"},
		SortFields: map[string]string{
			"id":         "id",
			"username":   "username",
			"email":      "email",
			"role":       "role",
			"created_at": "created_at",
		},
	}
)
