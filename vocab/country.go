package vocab

// Country is an ISO 3166-1 numeric country code.
type Country string

const (
	CountryAustralia      Country = "036"
	CountryNewZealand     Country = "554"
	CountryUnitedKingdom  Country = "826"
	CountryUnitedStates   Country = "840"
	CountryIndia          Country = "356"
	CountryChina          Country = "156"
	CountryPapuaNewGuinea Country = "598"
)

var countryTable = newTable[Country](
	CodeSystem{OID: "1.0.3166.1.2", Name: "ISO 3166-1 Country Codes"},
	entry{"004", "Afghanistan"},
	entry{"008", "Albania"},
	entry{"012", "Algeria"},
	entry{"016", "American Samoa"},
	entry{"020", "Andorra"},
	entry{"024", "Angola"},
	entry{"028", "Antigua and Barbuda"},
	entry{"031", "Azerbaijan"},
	entry{"032", "Argentina"},
	entry{"036", "Australia"},
	entry{"040", "Austria"},
	entry{"044", "Bahamas"},
	entry{"048", "Bahrain"},
	entry{"050", "Bangladesh"},
	entry{"051", "Armenia"},
	entry{"052", "Barbados"},
	entry{"056", "Belgium"},
	entry{"060", "Bermuda"},
	entry{"064", "Bhutan"},
	entry{"068", "Bolivia"},
	entry{"070", "Bosnia and Herzegovina"},
	entry{"072", "Botswana"},
	entry{"076", "Brazil"},
	entry{"084", "Belize"},
	entry{"090", "Solomon Islands"},
	entry{"092", "Virgin Islands (British)"},
	entry{"096", "Brunei Darussalam"},
	entry{"100", "Bulgaria"},
	entry{"104", "Myanmar"},
	entry{"108", "Burundi"},
	entry{"112", "Belarus"},
	entry{"116", "Cambodia"},
	entry{"120", "Cameroon"},
	entry{"124", "Canada"},
	entry{"132", "Cabo Verde"},
	entry{"136", "Cayman Islands"},
	entry{"140", "Central African Republic"},
	entry{"144", "Sri Lanka"},
	entry{"148", "Chad"},
	entry{"152", "Chile"},
	entry{"156", "China"},
	entry{"158", "Taiwan"},
	entry{"162", "Christmas Island"},
	entry{"166", "Cocos (Keeling) Islands"},
	entry{"170", "Colombia"},
	entry{"174", "Comoros"},
	entry{"175", "Mayotte"},
	entry{"178", "Congo"},
	entry{"180", "Congo (Democratic Republic)"},
	entry{"184", "Cook Islands"},
	entry{"188", "Costa Rica"},
	entry{"191", "Croatia"},
	entry{"192", "Cuba"},
	entry{"196", "Cyprus"},
	entry{"203", "Czechia"},
	entry{"204", "Benin"},
	entry{"208", "Denmark"},
	entry{"212", "Dominica"},
	entry{"214", "Dominican Republic"},
	entry{"218", "Ecuador"},
	entry{"222", "El Salvador"},
	entry{"226", "Equatorial Guinea"},
	entry{"231", "Ethiopia"},
	entry{"232", "Eritrea"},
	entry{"233", "Estonia"},
	entry{"234", "Faroe Islands"},
	entry{"238", "Falkland Islands"},
	entry{"242", "Fiji"},
	entry{"246", "Finland"},
	entry{"250", "France"},
	entry{"254", "French Guiana"},
	entry{"258", "French Polynesia"},
	entry{"262", "Djibouti"},
	entry{"266", "Gabon"},
	entry{"268", "Georgia"},
	entry{"270", "Gambia"},
	entry{"275", "Palestine"},
	entry{"276", "Germany"},
	entry{"288", "Ghana"},
	entry{"292", "Gibraltar"},
	entry{"296", "Kiribati"},
	entry{"300", "Greece"},
	entry{"304", "Greenland"},
	entry{"308", "Grenada"},
	entry{"312", "Guadeloupe"},
	entry{"316", "Guam"},
	entry{"320", "Guatemala"},
	entry{"324", "Guinea"},
	entry{"328", "Guyana"},
	entry{"332", "Haiti"},
	entry{"336", "Holy See"},
	entry{"340", "Honduras"},
	entry{"344", "Hong Kong"},
	entry{"348", "Hungary"},
	entry{"352", "Iceland"},
	entry{"356", "India"},
	entry{"360", "Indonesia"},
	entry{"364", "Iran"},
	entry{"368", "Iraq"},
	entry{"372", "Ireland"},
	entry{"376", "Israel"},
	entry{"380", "Italy"},
	entry{"384", "Côte d'Ivoire"},
	entry{"388", "Jamaica"},
	entry{"392", "Japan"},
	entry{"398", "Kazakhstan"},
	entry{"400", "Jordan"},
	entry{"404", "Kenya"},
	entry{"408", "Korea (Democratic People's Republic)"},
	entry{"410", "Korea (Republic)"},
	entry{"414", "Kuwait"},
	entry{"417", "Kyrgyzstan"},
	entry{"418", "Lao People's Democratic Republic"},
	entry{"422", "Lebanon"},
	entry{"426", "Lesotho"},
	entry{"428", "Latvia"},
	entry{"430", "Liberia"},
	entry{"434", "Libya"},
	entry{"438", "Liechtenstein"},
	entry{"440", "Lithuania"},
	entry{"442", "Luxembourg"},
	entry{"446", "Macao"},
	entry{"450", "Madagascar"},
	entry{"454", "Malawi"},
	entry{"458", "Malaysia"},
	entry{"462", "Maldives"},
	entry{"466", "Mali"},
	entry{"470", "Malta"},
	entry{"474", "Martinique"},
	entry{"478", "Mauritania"},
	entry{"480", "Mauritius"},
	entry{"484", "Mexico"},
	entry{"492", "Monaco"},
	entry{"496", "Mongolia"},
	entry{"498", "Moldova"},
	entry{"499", "Montenegro"},
	entry{"500", "Montserrat"},
	entry{"504", "Morocco"},
	entry{"508", "Mozambique"},
	entry{"512", "Oman"},
	entry{"516", "Namibia"},
	entry{"520", "Nauru"},
	entry{"524", "Nepal"},
	entry{"528", "Netherlands"},
	entry{"531", "Curaçao"},
	entry{"533", "Aruba"},
	entry{"534", "Sint Maarten"},
	entry{"535", "Bonaire, Sint Eustatius and Saba"},
	entry{"540", "New Caledonia"},
	entry{"548", "Vanuatu"},
	entry{"554", "New Zealand"},
	entry{"558", "Nicaragua"},
	entry{"562", "Niger"},
	entry{"566", "Nigeria"},
	entry{"570", "Niue"},
	entry{"574", "Norfolk Island"},
	entry{"578", "Norway"},
	entry{"580", "Northern Mariana Islands"},
	entry{"583", "Micronesia"},
	entry{"584", "Marshall Islands"},
	entry{"585", "Palau"},
	entry{"586", "Pakistan"},
	entry{"591", "Panama"},
	entry{"598", "Papua New Guinea"},
	entry{"600", "Paraguay"},
	entry{"604", "Peru"},
	entry{"608", "Philippines"},
	entry{"612", "Pitcairn"},
	entry{"616", "Poland"},
	entry{"620", "Portugal"},
	entry{"624", "Guinea-Bissau"},
	entry{"626", "Timor-Leste"},
	entry{"630", "Puerto Rico"},
	entry{"634", "Qatar"},
	entry{"638", "Réunion"},
	entry{"642", "Romania"},
	entry{"643", "Russian Federation"},
	entry{"646", "Rwanda"},
	entry{"652", "Saint Barthélemy"},
	entry{"654", "Saint Helena"},
	entry{"659", "Saint Kitts and Nevis"},
	entry{"660", "Anguilla"},
	entry{"662", "Saint Lucia"},
	entry{"663", "Saint Martin"},
	entry{"666", "Saint Pierre and Miquelon"},
	entry{"670", "Saint Vincent and the Grenadines"},
	entry{"674", "San Marino"},
	entry{"678", "Sao Tome and Principe"},
	entry{"682", "Saudi Arabia"},
	entry{"686", "Senegal"},
	entry{"688", "Serbia"},
	entry{"690", "Seychelles"},
	entry{"694", "Sierra Leone"},
	entry{"702", "Singapore"},
	entry{"703", "Slovakia"},
	entry{"704", "Viet Nam"},
	entry{"705", "Slovenia"},
	entry{"706", "Somalia"},
	entry{"710", "South Africa"},
	entry{"716", "Zimbabwe"},
	entry{"724", "Spain"},
	entry{"728", "South Sudan"},
	entry{"729", "Sudan"},
	entry{"732", "Western Sahara"},
	entry{"740", "Suriname"},
	entry{"744", "Svalbard and Jan Mayen"},
	entry{"748", "Eswatini"},
	entry{"752", "Sweden"},
	entry{"756", "Switzerland"},
	entry{"760", "Syrian Arab Republic"},
	entry{"762", "Tajikistan"},
	entry{"764", "Thailand"},
	entry{"768", "Togo"},
	entry{"772", "Tokelau"},
	entry{"776", "Tonga"},
	entry{"780", "Trinidad and Tobago"},
	entry{"784", "United Arab Emirates"},
	entry{"788", "Tunisia"},
	entry{"792", "Türkiye"},
	entry{"795", "Turkmenistan"},
	entry{"796", "Turks and Caicos Islands"},
	entry{"798", "Tuvalu"},
	entry{"800", "Uganda"},
	entry{"804", "Ukraine"},
	entry{"807", "North Macedonia"},
	entry{"818", "Egypt"},
	entry{"826", "United Kingdom"},
	entry{"831", "Guernsey"},
	entry{"832", "Jersey"},
	entry{"833", "Isle of Man"},
	entry{"834", "Tanzania"},
	entry{"840", "United States of America"},
	entry{"850", "Virgin Islands (U.S.)"},
	entry{"854", "Burkina Faso"},
	entry{"858", "Uruguay"},
	entry{"860", "Uzbekistan"},
	entry{"862", "Venezuela"},
	entry{"876", "Wallis and Futuna"},
	entry{"882", "Samoa"},
	entry{"887", "Yemen"},
	entry{"894", "Zambia"},
)

func (v Country) Code() string           { return string(v) }
func (v Country) DisplayName() string    { return countryTable.display(v) }
func (v Country) CodeSystem() CodeSystem { return countryTable.system }
func (v Country) IsValid() bool          { return countryTable.valid(v) }

// ParseCountry returns the Country for a three-digit code.
func ParseCountry(code string) (Country, error) { return countryTable.parse(code) }

// CountryValues returns every Country ordered by code.
func CountryValues() []Country { return countryTable.values() }
