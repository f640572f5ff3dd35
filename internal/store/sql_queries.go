package store

// Fixed CRUD statements. Listing queries are not written by hand; they are
// composed per request by the query package from the entity metadata in
// entities.go.
const (
	createCamera = `INSERT INTO cameras (
		serial_no, item_description, model_no, brand, rta_tag, camera_name,
		ip_address, mac_address, firmware_version, protocol, sd_card,
		sd_capacity, status, camera_status, details, comments, is_asset,
		location_id, nvr_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	RETURNING id, serial_no, item_description, model_no, brand, rta_tag,
		camera_name, ip_address, mac_address, firmware_version, protocol,
		sd_card, sd_capacity, status, camera_status, details, comments,
		is_asset, location_id, nvr_id;`

	getCameraByID = `SELECT id, serial_no, item_description, model_no, brand, rta_tag,
		camera_name, ip_address, mac_address, firmware_version, protocol,
		sd_card, sd_capacity, status, camera_status, details, comments,
		is_asset, location_id, nvr_id
	FROM cameras
	WHERE id = $1;`

	updateCamera = `UPDATE cameras SET
		serial_no = $1, item_description = $2, model_no = $3, brand = $4,
		rta_tag = $5, camera_name = $6, ip_address = $7, mac_address = $8,
		firmware_version = $9, protocol = $10, sd_card = $11,
		sd_capacity = $12, status = $13, camera_status = $14, details = $15,
		comments = $16, is_asset = $17, location_id = $18, nvr_id = $19
	WHERE id = $20
	RETURNING id, serial_no, item_description, model_no, brand, rta_tag,
		camera_name, ip_address, mac_address, firmware_version, protocol,
		sd_card, sd_capacity, status, camera_status, details, comments,
		is_asset, location_id, nvr_id;`

	deleteCamera = `DELETE FROM cameras WHERE id = $1;`

	createLocation = `INSERT INTO locations (location_name, location_type, item_location, old_location)
	VALUES ($1, $2, $3, $4)
	RETURNING id, location_name, location_type, item_location, old_location;`

	getLocationByID = `SELECT id, location_name, location_type, item_location, old_location
	FROM locations
	WHERE id = $1;`

	getLocationIDs = `SELECT id FROM locations ORDER BY id;`

	updateLocation = `UPDATE locations SET
		location_name = $1, location_type = $2, item_location = $3, old_location = $4
	WHERE id = $5
	RETURNING id, location_name, location_type, item_location, old_location;`

	deleteLocation = `DELETE FROM locations WHERE id = $1;`

	createNVR = `INSERT INTO nvr_devices (nvr_name, ip_address, channel_number, switch_port)
	VALUES ($1, $2, $3, $4)
	RETURNING id, nvr_name, ip_address, channel_number, switch_port;`

	getNVRByID = `SELECT id, nvr_name, ip_address, channel_number, switch_port
	FROM nvr_devices
	WHERE id = $1;`

	updateNVR = `UPDATE nvr_devices SET
		nvr_name = $1, ip_address = $2, channel_number = $3, switch_port = $4
	WHERE id = $5
	RETURNING id, nvr_name, ip_address, channel_number, switch_port;`

	deleteNVR = `DELETE FROM nvr_devices WHERE id = $1;`

	createAction = `INSERT INTO camera_actions (camera_id, action_type, old_value, new_value, notes, action_date)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, camera_id, action_type, old_value, new_value, notes, action_date;`

	createUser = `INSERT INTO users (
		email, username, full_name, hashed_password, role, is_active,
		is_verified, assigned_location_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, email, username, full_name, hashed_password, role,
		is_active, is_verified, created_at, updated_at, last_login,
		assigned_location_id;`

	getUserByID = `SELECT id, email, username, full_name, hashed_password, role,
		is_active, is_verified, created_at, updated_at, last_login,
		assigned_location_id
	FROM users
	WHERE id = $1;`

	findUserByLoginOrEmail = `SELECT id, email, username, full_name, hashed_password, role,
		is_active, is_verified, created_at, updated_at, last_login,
		assigned_location_id
	FROM users
	WHERE username = $1 OR email = $1;`

	updateUser = `UPDATE users SET
		email = $1, username = $2, full_name = $3, role = $4, is_active = $5,
		is_verified = $6, assigned_location_id = $7, updated_at = NOW()
	WHERE id = $8
	RETURNING id, email, username, full_name, hashed_password, role,
		is_active, is_verified, created_at, updated_at, last_login,
		assigned_location_id;`

	updateUserPassword = `UPDATE users SET hashed_password = $1, updated_at = NOW() WHERE id = $2;`

	updateUserLastLogin = `UPDATE users SET last_login = NOW() WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)
