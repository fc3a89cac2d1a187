package domain

// Fixture patients loaded into the store at startup.
var fixturePatients = []Patient{
	{ID: 1, FirstName: "James", LastName: "Smith", Email: "james.smith@gmail.com", PhoneNumber: "+1-555-1234", DOB: "1985-03-15"},
	{ID: 2, FirstName: "Mary", LastName: "Johnson", Email: "mary.johnson@yahoo.com", PhoneNumber: "+1-555-2345", DOB: "1992-07-22"},
	{ID: 3, FirstName: "John", LastName: "Williams", Email: "john.williams@hotmail.com", PhoneNumber: "+1-555-3456", DOB: "1978-11-08"},
	{ID: 4, FirstName: "Patricia", LastName: "Brown", Email: "patricia.brown@outlook.com", PhoneNumber: "+1-555-4567", DOB: "1995-05-12"},
	{ID: 5, FirstName: "Robert", LastName: "Jones", Email: "robert.jones@aol.com", PhoneNumber: "+1-555-5678", DOB: "1960-09-30"},
	{ID: 6, FirstName: "Jennifer", LastName: "Garcia", Email: "jennifer.garcia@icloud.com", PhoneNumber: "+1-555-6789", DOB: "1987-12-03"},
	{ID: 7, FirstName: "Michael", LastName: "Miller", Email: "michael.miller@comcast.net", PhoneNumber: "+1-555-7890", DOB: "1983-04-18"},
	{ID: 8, FirstName: "Linda", LastName: "Davis", Email: "linda.davis@verizon.net", PhoneNumber: "+1-555-8901", DOB: "1976-08-25"},
	{ID: 9, FirstName: "William", LastName: "Rodriguez", Email: "william.rodriguez@att.net", PhoneNumber: "+1-555-9012", DOB: "1991-01-14"},
	{ID: 10, FirstName: "Elizabeth", LastName: "Martinez", Email: "elizabeth.martinez@charter.net", PhoneNumber: "+1-555-0123", DOB: "1989-06-07"},
	{ID: 11, FirstName: "David", LastName: "Hernandez", Email: "david.hernandez@gmail.com", PhoneNumber: "+1-555-1235", DOB: "1972-10-29"},
	{ID: 12, FirstName: "Barbara", LastName: "Lopez", Email: "barbara.lopez@yahoo.com", PhoneNumber: "+1-555-2346", DOB: "1984-02-11"},
	{ID: 13, FirstName: "Richard", LastName: "Gonzalez", Email: "richard.gonzalez@hotmail.com", PhoneNumber: "+1-555-3457", DOB: "1990-09-16"},
	{ID: 14, FirstName: "Susan", LastName: "Wilson", Email: "susan.wilson@outlook.com", PhoneNumber: "+1-555-4568", DOB: "1979-12-23"},
	{ID: 15, FirstName: "Joseph", LastName: "Anderson", Email: "joseph.anderson@aol.com", PhoneNumber: "+1-555-5679", DOB: "1988-05-05"},
	{ID: 16, FirstName: "Jessica", LastName: "Thomas", Email: "jessica.thomas@icloud.com", PhoneNumber: "+1-555-6780", DOB: "1993-08-31"},
	{ID: 17, FirstName: "Thomas", LastName: "Taylor", Email: "thomas.taylor@comcast.net", PhoneNumber: "+1-555-7891", DOB: "1975-03-19"},
	{ID: 18, FirstName: "Sarah", LastName: "Moore", Email: "sarah.moore@verizon.net", PhoneNumber: "+1-555-8902", DOB: "1986-11-12"},
	{ID: 19, FirstName: "Christopher", LastName: "Jackson", Email: "christopher.jackson@att.net", PhoneNumber: "+1-555-9013", DOB: "1982-07-28"},
	{ID: 20, FirstName: "Karen", LastName: "Martin", Email: "karen.martin@charter.net", PhoneNumber: "+1-555-0124", DOB: "1994-01-02"},
	{ID: 21, FirstName: "Charles", LastName: "Lee", Email: "charles.lee@gmail.com", PhoneNumber: "+1-555-1236", DOB: "1977-04-15"},
	{ID: 22, FirstName: "Nancy", LastName: "Perez", Email: "nancy.perez@yahoo.com", PhoneNumber: "+1-555-2347", DOB: "1985-10-08"},
	{ID: 23, FirstName: "Daniel", LastName: "Thompson", Email: "daniel.thompson@hotmail.com", PhoneNumber: "+1-555-3458", DOB: "1991-06-21"},
	{ID: 24, FirstName: "Lisa", LastName: "White", Email: "lisa.white@outlook.com", PhoneNumber: "+1-555-4569", DOB: "1980-12-14"},
	{ID: 25, FirstName: "Matthew", LastName: "Harris", Email: "matthew.harris@aol.com", PhoneNumber: "+1-555-5680", DOB: "1987-03-27"},
	{ID: 26, FirstName: "Betty", LastName: "Sanchez", Email: "betty.sanchez@icloud.com", PhoneNumber: "+1-555-6781", DOB: "1973-09-03"},
	{ID: 27, FirstName: "Anthony", LastName: "Clark", Email: "anthony.clark@comcast.net", PhoneNumber: "+1-555-7892", DOB: "1989-02-16"},
	{ID: 28, FirstName: "Helen", LastName: "Ramirez", Email: "helen.ramirez@verizon.net", PhoneNumber: "+1-555-8903", DOB: "1984-08-09"},
	{ID: 29, FirstName: "Mark", LastName: "Lewis", Email: "mark.lewis@att.net", PhoneNumber: "+1-555-9014", DOB: "1992-05-22"},
	{ID: 30, FirstName: "Sandra", LastName: "Robinson", Email: "sandra.robinson@charter.net", PhoneNumber: "+1-555-0125", DOB: "1978-11-05"},
	{ID: 31, FirstName: "Donald", LastName: "Walker", Email: "donald.walker@gmail.com", PhoneNumber: "+1-555-1237", DOB: "1986-07-18"},
	{ID: 32, FirstName: "Donna", LastName: "Young", Email: "donna.young@yahoo.com", PhoneNumber: "+1-555-2348", DOB: "1981-01-31"},
	{ID: 33, FirstName: "Steven", LastName: "Allen", Email: "steven.allen@hotmail.com", PhoneNumber: "+1-555-3459", DOB: "1990-04-13"},
	{ID: 34, FirstName: "Carol", LastName: "King", Email: "carol.king@outlook.com", PhoneNumber: "+1-555-4570", DOB: "1975-10-26"},
	{ID: 35, FirstName: "Paul", LastName: "Wright", Email: "paul.wright@aol.com", PhoneNumber: "+1-555-5681", DOB: "1988-06-08"},
	{ID: 36, FirstName: "Ruth", LastName: "Scott", Email: "ruth.scott@icloud.com", PhoneNumber: "+1-555-6782", DOB: "1983-12-21"},
	{ID: 37, FirstName: "Andrew", LastName: "Torres", Email: "andrew.torres@comcast.net", PhoneNumber: "+1-555-7893", DOB: "1991-03-04"},
	{ID: 38, FirstName: "Sharon", LastName: "Nguyen", Email: "sharon.nguyen@verizon.net", PhoneNumber: "+1-555-8904", DOB: "1979-09-17"},
	{ID: 39, FirstName: "Joshua", LastName: "Hill", Email: "joshua.hill@att.net", PhoneNumber: "+1-555-9015", DOB: "1987-02-28"},
	{ID: 40, FirstName: "Michelle", LastName: "Flores", Email: "michelle.flores@charter.net", PhoneNumber: "+1-555-0126", DOB: "1994-08-11"},
	{ID: 41, FirstName: "Kenneth", LastName: "Green", Email: "kenneth.green@gmail.com", PhoneNumber: "+1-555-1238", DOB: "1976-05-24"},
	{ID: 42, FirstName: "Laura", LastName: "Adams", Email: "laura.adams@yahoo.com", PhoneNumber: "+1-555-2349", DOB: "1985-11-06"},
	{ID: 43, FirstName: "Kevin", LastName: "Nelson", Email: "kevin.nelson@hotmail.com", PhoneNumber: "+1-555-3460", DOB: "1982-07-19"},
	{ID: 44, FirstName: "Kimberly", LastName: "Baker", Email: "kimberly.baker@outlook.com", PhoneNumber: "+1-555-4571", DOB: "1989-01-01"},
	{ID: 45, FirstName: "Brian", LastName: "Hall", Email: "brian.hall@aol.com", PhoneNumber: "+1-555-5682", DOB: "1977-04-14"},
	{ID: 46, FirstName: "George", LastName: "Rivera", Email: "george.rivera@icloud.com", PhoneNumber: "+1-555-6783", DOB: "1984-10-27"},
	{ID: 47, FirstName: "Deborah", LastName: "Campbell", Email: "deborah.campbell@comcast.net", PhoneNumber: "+1-555-7894", DOB: "1992-06-09"},
	{ID: 48, FirstName: "Timothy", LastName: "Mitchell", Email: "timothy.mitchell@verizon.net", PhoneNumber: "+1-555-8905", DOB: "1980-12-22"},
	{ID: 49, FirstName: "Dorothy", LastName: "Carter", Email: "dorothy.carter@att.net", PhoneNumber: "+1-555-9016", DOB: "1988-03-05"},
	{ID: 50, FirstName: "Ronald", LastName: "Roberts", Email: "ronald.roberts@charter.net", PhoneNumber: "+1-555-0127", DOB: "1973-09-18"},
	{ID: 51, FirstName: "Jason", LastName: "Gomez", Email: "jason.gomez@gmail.com", PhoneNumber: "+1-555-1239", DOB: "1986-02-29"},
	{ID: 52, FirstName: "Nancy", LastName: "Phillips", Email: "nancy.phillips@yahoo.com", PhoneNumber: "+1-555-2350", DOB: "1981-08-12"},
	{ID: 53, FirstName: "Edward", LastName: "Evans", Email: "edward.evans@hotmail.com", PhoneNumber: "+1-555-3461", DOB: "1990-05-25"},
	{ID: 54, FirstName: "Karen", LastName: "Turner", Email: "karen.turner@outlook.com", PhoneNumber: "+1-555-4572", DOB: "1975-11-07"},
	{ID: 55, FirstName: "Jeffrey", LastName: "Diaz", Email: "jeffrey.diaz@aol.com", PhoneNumber: "+1-555-5683", DOB: "1987-07-20"},
	{ID: 56, FirstName: "Betty", LastName: "Parker", Email: "betty.parker@icloud.com", PhoneNumber: "+1-555-6784", DOB: "1983-01-03"},
	{ID: 57, FirstName: "Ryan", LastName: "Cruz", Email: "ryan.cruz@comcast.net", PhoneNumber: "+1-555-7895", DOB: "1991-04-16"},
	{ID: 58, FirstName: "Helen", LastName: "Edwards", Email: "helen.edwards@verizon.net", PhoneNumber: "+1-555-8906", DOB: "1979-10-29"},
	{ID: 59, FirstName: "Jacob", LastName: "Collins", Email: "jacob.collins@att.net", PhoneNumber: "+1-555-9017", DOB: "1988-06-11"},
	{ID: 60, FirstName: "Sandra", LastName: "Reyes", Email: "sandra.reyes@charter.net", PhoneNumber: "+1-555-0128", DOB: "1984-12-24"},
	{ID: 61, FirstName: "Gary", LastName: "Stewart", Email: "gary.stewart@gmail.com", PhoneNumber: "+1-555-1240", DOB: "1992-03-07"},
	{ID: 62, FirstName: "Donna", LastName: "Morris", Email: "donna.morris@yahoo.com", PhoneNumber: "+1-555-2351", DOB: "1978-09-20"},
	{ID: 63, FirstName: "Nicholas", LastName: "Morales", Email: "nicholas.morales@hotmail.com", PhoneNumber: "+1-555-3462", DOB: "1986-02-02"},
	{ID: 64, FirstName: "Carol", LastName: "Murphy", Email: "carol.murphy@outlook.com", PhoneNumber: "+1-555-4573", DOB: "1981-08-15"},
	{ID: 65, FirstName: "Eric", LastName: "Cook", Email: "eric.cook@aol.com", PhoneNumber: "+1-555-5684", DOB: "1989-05-28"},
	{ID: 66, FirstName: "Ruth", LastName: "Rogers", Email: "ruth.rogers@icloud.com", PhoneNumber: "+1-555-6785", DOB: "1975-11-10"},
	{ID: 67, FirstName: "Jonathan", LastName: "Gutierrez", Email: "jonathan.gutierrez@comcast.net", PhoneNumber: "+1-555-7896", DOB: "1987-07-23"},
	{ID: 68, FirstName: "Sharon", LastName: "Ortiz", Email: "sharon.ortiz@verizon.net", PhoneNumber: "+1-555-8907", DOB: "1983-01-05"},
	{ID: 69, FirstName: "Stephen", LastName: "Morgan", Email: "stephen.morgan@att.net", PhoneNumber: "+1-555-9018", DOB: "1990-04-18"},
	{ID: 70, FirstName: "Michelle", LastName: "Cooper", Email: "michelle.cooper@charter.net", PhoneNumber: "+1-555-0129", DOB: "1976-10-31"},
	{ID: 71, FirstName: "Larry", LastName: "Peterson", Email: "larry.peterson@gmail.com", PhoneNumber: "+1-555-1241", DOB: "1985-06-13"},
	{ID: 72, FirstName: "Laura", LastName: "Bailey", Email: "laura.bailey@yahoo.com", PhoneNumber: "+1-555-2352", DOB: "1982-12-26"},
	{ID: 73, FirstName: "Justin", LastName: "Reed", Email: "justin.reed@hotmail.com", PhoneNumber: "+1-555-3463", DOB: "1991-03-09"},
	{ID: 74, FirstName: "Sarah", LastName: "Kelly", Email: "sarah.kelly@outlook.com", PhoneNumber: "+1-555-4574", DOB: "1979-09-22"},
	{ID: 75, FirstName: "Scott", LastName: "Howard", Email: "scott.howard@aol.com", PhoneNumber: "+1-555-5685", DOB: "1988-02-04"},
	{ID: 76, FirstName: "Kimberly", LastName: "Ramos", Email: "kimberly.ramos@icloud.com", PhoneNumber: "+1-555-6786", DOB: "1984-08-17"},
	{ID: 77, FirstName: "Brandon", LastName: "Kim", Email: "brandon.kim@comcast.net", PhoneNumber: "+1-555-7897", DOB: "1993-05-30"},
	{ID: 78, FirstName: "Deborah", LastName: "Cox", Email: "deborah.cox@verizon.net", PhoneNumber: "+1-555-8908", DOB: "1977-11-12"},
	{ID: 79, FirstName: "Benjamin", LastName: "Ward", Email: "benjamin.ward@att.net", PhoneNumber: "+1-555-9019", DOB: "1986-07-25"},
	{ID: 80, FirstName: "Dorothy", LastName: "Richardson", Email: "dorothy.richardson@charter.net", PhoneNumber: "+1-555-0130", DOB: "1982-01-07"},
	{ID: 81, FirstName: "Samuel", LastName: "Watson", Email: "samuel.watson@gmail.com", PhoneNumber: "+1-555-1242", DOB: "1990-04-20"},
	{ID: 82, FirstName: "Amy", LastName: "Brooks", Email: "amy.brooks@yahoo.com", PhoneNumber: "+1-555-2353", DOB: "1975-10-03"},
	{ID: 83, FirstName: "Gregory", LastName: "Chavez", Email: "gregory.chavez@hotmail.com", PhoneNumber: "+1-555-3464", DOB: "1987-06-16"},
	{ID: 84, FirstName: "Angela", LastName: "Wood", Email: "angela.wood@outlook.com", PhoneNumber: "+1-555-4575", DOB: "1983-12-29"},
	{ID: 85, FirstName: "Frank", LastName: "James", Email: "frank.james@aol.com", PhoneNumber: "+1-555-5686", DOB: "1991-03-11"},
	{ID: 86, FirstName: "Ashley", LastName: "Bennett", Email: "ashley.bennett@icloud.com", PhoneNumber: "+1-555-6787", DOB: "1979-09-24"},
	{ID: 87, FirstName: "Alexander", LastName: "Gray", Email: "alexander.gray@comcast.net", PhoneNumber: "+1-555-7898", DOB: "1988-02-06"},
	{ID: 88, FirstName: "Brenda", LastName: "Mendoza", Email: "brenda.mendoza@verizon.net", PhoneNumber: "+1-555-8909", DOB: "1984-08-19"},
	{ID: 89, FirstName: "Raymond", LastName: "Ruiz", Email: "raymond.ruiz@att.net", PhoneNumber: "+1-555-9020", DOB: "1992-05-01"},
	{ID: 90, FirstName: "Emma", LastName: "Hughes", Email: "emma.hughes@charter.net", PhoneNumber: "+1-555-0131", DOB: "1978-11-14"},
	{ID: 91, FirstName: "Jack", LastName: "Price", Email: "jack.price@gmail.com", PhoneNumber: "+1-555-1243", DOB: "1986-07-27"},
	{ID: 92, FirstName: "Olivia", LastName: "Alvarez", Email: "olivia.alvarez@yahoo.com", PhoneNumber: "+1-555-2354", DOB: "1981-01-09"},
	{ID: 93, FirstName: "Dennis", LastName: "Castillo", Email: "dennis.castillo@hotmail.com", PhoneNumber: "+1-555-3465", DOB: "1989-04-22"},
	{ID: 94, FirstName: "Cynthia", LastName: "Sanders", Email: "cynthia.sanders@outlook.com", PhoneNumber: "+1-555-4576", DOB: "1975-10-05"},
	{ID: 95, FirstName: "Jerry", LastName: "Patel", Email: "jerry.patel@aol.com", PhoneNumber: "+1-555-5687", DOB: "1987-06-18"},
	{ID: 96, FirstName: "Marie", LastName: "Myers", Email: "marie.myers@icloud.com", PhoneNumber: "+1-555-6788", DOB: "1983-12-31"},
	{ID: 97, FirstName: "Tyler", LastName: "Long", Email: "tyler.long@comcast.net", PhoneNumber: "+1-555-7899", DOB: "1990-03-13"},
	{ID: 98, FirstName: "Janet", LastName: "Ross", Email: "janet.ross@verizon.net", PhoneNumber: "+1-555-8910", DOB: "1976-09-26"},
	{ID: 99, FirstName: "Aaron", LastName: "Foster", Email: "aaron.foster@att.net", PhoneNumber: "+1-555-9021", DOB: "1985-02-08"},
	{ID: 100, FirstName: "Catherine", LastName: "Jimenez", Email: "catherine.jimenez@charter.net", PhoneNumber: "+1-555-0132", DOB: "1982-08-21"},
}

// FixturePatients returns a fresh copy of the seed data.
func FixturePatients() []Patient {
	out := make([]Patient, len(fixturePatients))
	copy(out, fixturePatients)
	return out
}
