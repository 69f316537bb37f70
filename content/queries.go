package content

// Named GROQ projections, one per content shape a page needs. Every list
// query filters to active documents and orders by the author-controlled
// `order` field ascending; singletons take the first document of their type.

const personalInfoQuery = `
*[_type == "personalInfo"][0] {
  _id,
  name,
  firstName,
  lastName,
  title,
  roles,
  tagline,
  bio,
  profileImage { asset->{ _id, url }, alt },
  resumeFile { asset->{ _id, url } },
  location,
  availability,
  yearsOfExperience,
  projectsCompleted,
  email,
  phone,
  "socialLinks": *[_type == "socialLink" && showInHero == true && isActive == true] | order(order asc) {
    _id,
    platform,
    url,
    username,
    displayText,
    order
  }
}`

const skillCategoriesQuery = `
*[_type == "skillCategory" && isActive == true] | order(order asc) {
  _id,
  name,
  slug,
  description,
  icon { asset->{ _id, url }, alt },
  color,
  order,
  isActive
}`

const skillsQuery = `
*[_type == "skill" && isActive == true] | order(order asc) {
  _id,
  name,
  category->{ _id, name, slug, color },
  proficiency,
  icon { asset->{ _id, url }, alt },
  description,
  yearsOfExperience,
  isHighlighted,
  order,
  isActive
}`

const skillsWithCategoriesQuery = `
{
  "categories": *[_type == "skillCategory" && isActive == true] | order(order asc) {
    _id,
    name,
    slug,
    description,
    color,
    order
  },
  "skills": *[_type == "skill" && isActive == true] | order(order asc) {
    _id,
    name,
    category->{ _id, name, slug, color },
    proficiency,
    icon { asset->{ _id, url }, alt },
    description,
    yearsOfExperience,
    isHighlighted,
    order
  }
}`

const projectsQuery = `
*[_type == "project" && isActive == true] | order(order asc) {
  _id,
  title,
  slug,
  description,
  mainImage { asset->{ _id, url }, alt },
  category,
  technologies[]->{ _id, name, category->{ name, color } },
  features,
  liveUrl,
  githubUrl,
  demoUrl,
  startDate,
  endDate,
  client,
  teamSize,
  myRole,
  status,
  isFeatured,
  order
}`

const featuredProjectsQuery = `
*[_type == "project" && isActive == true && isFeatured == true] | order(order asc) {
  _id,
  title,
  slug,
  description,
  mainImage { asset->{ _id, url }, alt },
  category,
  technologies[]->{ _id, name },
  features,
  liveUrl,
  githubUrl,
  isFeatured
}`

const projectSlugsQuery = `
*[_type == "project" && isActive == true] {
  "slug": slug.current
}`

const projectBySlugQuery = `
*[_type == "project" && slug.current == $slug && isActive == true][0] {
  _id,
  title,
  slug,
  description,
  longDescription,
  mainImage { asset->{ _id, url }, alt },
  gallery[] { asset->{ _id, url }, alt },
  category,
  technologies[]->{ _id, name, category->{ name, color }, proficiency },
  features,
  challenges,
  solutions,
  results,
  liveUrl,
  githubUrl,
  demoUrl,
  caseStudyUrl,
  startDate,
  endDate,
  client,
  teamSize,
  myRole,
  status,
  testimonial,
  isFeatured
}`

const experiencesQuery = `
*[_type == "experience" && isActive == true] | order(order asc) {
  _id,
  title,
  company,
  companyUrl,
  type,
  location,
  startDate,
  endDate,
  isCurrent,
  description,
  achievements,
  technologies[]->{ _id, name, category->{ name, color } },
  relatedProjects[]->{ _id, title, slug },
  companyLogo { asset->{ _id, url }, alt },
  companyWebsite,
  order
}`

const socialLinksQuery = `
*[_type == "socialLink" && isActive == true] | order(order asc) {
  _id,
  platform,
  url,
  username,
  displayText,
  icon { asset->{ _id, url }, alt },
  order,
  showInHeader,
  showInFooter,
  showInHero,
  showInContact
}`

const headerSocialLinksQuery = `
*[_type == "socialLink" && isActive == true && showInHeader == true] | order(order asc) {
  _id,
  platform,
  url,
  username,
  displayText,
  order
}`

const footerSocialLinksQuery = `
*[_type == "socialLink" && isActive == true && showInFooter == true] | order(order asc) {
  _id,
  platform,
  url,
  username,
  displayText,
  order
}`

const contactSocialLinksQuery = `
*[_type == "socialLink" && isActive == true && showInContact == true] | order(order asc) {
  _id,
  platform,
  url,
  username,
  displayText,
  icon { asset->{ _id, url }, alt },
  order
}`

const contactInfoQuery = `
*[_type == "contactInfo"][0] {
  _id,
  title,
  subtitle,
  description,
  email,
  phone,
  location,
  availability,
  preferredContactMethod,
  responseTime,
  formEnabled,
  formSuccessMessage,
  formErrorMessage
}`

const siteSettingsQuery = `
*[_type == "siteSettings"][0] {
  _id,
  title,
  description,
  keywords,
  author,
  siteUrl,
  ogImage { asset->{ _id, url }, alt },
  twitterHandle,
  googleAnalyticsId,
  enableBlog,
  enableDarkMode
}`
